package confutil

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrEnvVariableNotProvided = errors.New("env variable not set")

// EnvTagResolver resolves ${env:NAME} tokens to environment variable values.
var EnvTagResolver TagResolver = envTokenResolver

func envTokenResolver(in string) (string, error) {
	val, ok := os.LookupEnv(in)
	if !ok {
		return "", fmt.Errorf("%s: %w", in, ErrEnvVariableNotProvided)
	}
	return val, nil
}

// PropertyTagResolver reads a key=value properties file.
// Token format: ${property:/path/to/file.properties#key}.
var PropertyTagResolver TagResolver = propertyTokenResolver

func propertyTokenResolver(in string) (string, error) {
	split := strings.SplitN(in, "#", 2)
	if len(split) < 2 {
		return "", fmt.Errorf("invalid property token '%v', want file#key", in)
	}
	filename, property := split[0], split[1]
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("cannot open file: '%v'", filename)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "=") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if kv[0] == property {
			return kv[1], nil
		}
	}
	return "", fmt.Errorf("no such property '%v', in file '%v'", property, filename)
}
