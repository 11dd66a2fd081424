package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d values directory path
//	-e default environment name
//	-c/-config yaml file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-required comma-separated required dotted paths
//	-replace-on-conflict merge type conflicts resolve to the overlay value
//	-delete-on-null explicit overlay nulls delete base keys
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var valuesDirectory string
	var defaultEnvironment string
	var yamlConfigPath string
	var requestTimeout time.Duration
	var requiredPaths string
	var replaceOnConflict bool
	var deleteOnNull bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&valuesDirectory, "d", "", "Values directory path")
	flag.StringVar(&defaultEnvironment, "e", "", "Default environment name")
	flag.StringVar(&yamlConfigPath, "c", "", "YAML config file path")
	flag.StringVar(&yamlConfigPath, "config", "", "YAML config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&requiredPaths, "required", "", "Comma-separated required dotted paths")
	flag.BoolVar(&replaceOnConflict, "replace-on-conflict", false, "Overlay wins on layer type conflicts")
	flag.BoolVar(&deleteOnNull, "delete-on-null", false, "Explicit overlay nulls delete base keys")

	flag.Parse()

	var required []string
	for _, path := range strings.Split(requiredPaths, ",") {
		if path = strings.TrimSpace(path); path != "" {
			required = append(required, path)
		}
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Values: Values{
			Directory:          valuesDirectory,
			DefaultEnvironment: defaultEnvironment,
			RequiredPaths:      required,
			ReplaceOnConflict:  replaceOnConflict,
			DeleteOnNull:       deleteOnNull,
		},
		YAMLFilePath: yamlConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// falls through to lower-precedence sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
