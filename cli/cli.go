package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/saluton/saluton/core/capability"
	"github.com/saluton/saluton/core/config"
	"github.com/saluton/saluton/core/loader"
	"github.com/saluton/saluton/lib/errutil"
	"github.com/saluton/saluton/lib/zaputil"
	"github.com/saluton/saluton/web"
)

const Version = "0.1.0"
const defaultConfigFile = "saluton"

// PluginsEnv is used as plugin descriptor location when -plugins flag is not set.
const PluginsEnv = "SALUTON_PLUGINS"

var configSearchDirs = []string{"./", "./config", "/etc/saluton"}

type cliConfig struct {
	Web web.Config `config:",squash"`
}

func Run() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of Saluton: saluton [<config_filename>]\n"+"<config_filename> is './%s.(yaml|json|...)' by default\n", defaultConfigFile)
		flag.PrintDefaults()
	}
	var (
		plugins string
		expvar  bool
		version bool
	)
	flag.StringVar(&plugins, "plugins", "", "plugin descriptor location: file:<path>, embed:<path> or plain file path; "+PluginsEnv+" env var is used when empty")
	flag.BoolVar(&expvar, "expvar", false, "start HTTP server with monitoring variables")
	flag.BoolVar(&version, "version", false, "print version to STDOUT and exit")
	flag.Parse()

	if version {
		fmt.Println("Saluton " + Version)
		return
	}

	log, conf := readConfig()

	if plugins == "" {
		plugins = os.Getenv(PluginsEnv)
	}
	reg := capability.NewRegistry()
	err := loader.Load(log, afero.NewOsFs(), reg, plugins)
	if err != nil {
		log.Fatal("Plugin load failed", zap.Error(err))
	}
	reg.Seal()
	greeter, ok := capability.Greeter(reg)
	if ok {
		log.Info("Greeter capability is available", zap.Strings("languages", greeter.SupportedLanguages()))
	} else {
		log.Info("No greeter capability, serving default greetings only")
	}

	startMonitoring(expvar)
	m := newWebMetrics()
	startReport(m)

	server := web.New(log, m, conf.Web, greeter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleSignals(log, cancel)

	err = server.Run(ctx)
	if !errutil.IsCtxError(ctx, err) {
		log.Fatal("Server run failed", zap.Error(err))
	}
	log.Info("Server run successfully finished")
}

func readConfig() (*zap.Logger, cliConfig) {
	log, err := zap.NewDevelopment(zap.AddCaller(), zap.WrapCore(zaputil.NewStackExtractCore))
	if err != nil {
		panic(err)
	}
	log.Info("Saluton started", zap.String("version", Version))
	zap.ReplaceGlobals(log)
	zap.RedirectStdLog(log)

	v := newViper()
	if len(flag.Args()) > 0 {
		v.SetConfigFile(flag.Args()[0])
	}
	err = v.ReadInConfig()
	if err != nil {
		// Config file is optional, but explicitly set one must be readable.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal("Config read failed", zap.Error(err))
		}
		log.Info("No config file found, using defaults")
	} else {
		log.Info("Reading config", zap.String("file", v.ConfigFileUsed()))
	}
	conf := cliConfig{Web: web.DefaultConfig()}
	err = config.DecodeAndValidate(v.AllSettings(), &conf)
	if err != nil {
		log.Fatal("Config decode failed", zap.Error(err))
	}
	return log, conf
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(defaultConfigFile)
	for _, dir := range configSearchDirs {
		v.AddConfigPath(dir)
	}
	return v
}

func handleSignals(log *zap.Logger, interrupt func()) {
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	switch sig {
	case syscall.SIGINT:
		const interruptTimeout = 5 * time.Second
		log.Info("SIGINT received. Trying to stop gracefully.", zap.Duration("timeout", interruptTimeout))
		interrupt()
		select {
		case <-time.After(interruptTimeout):
			log.Fatal("Interrupt timeout exceeded")
		case sig := <-sigs:
			log.Fatal("Another signal received. Quiting.", zap.Stringer("signal", sig))
		}
	case syscall.SIGTERM:
		log.Info("SIGTERM received. Quiting.")
		os.Exit(0)
	default:
		log.Fatal("Unexpected signal received. Quiting.", zap.Stringer("signal", sig))
	}
}

func startMonitoring(expvar bool) {
	if !expvar {
		return
	}
	go func() {
		err := http.ListenAndServe(":1234", nil)
		zap.L().Fatal("Monitoring server failed", zap.Error(err))
	}()
}
