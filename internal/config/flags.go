package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" if neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s of form host:port. An empty host listens on every interface;
// otherwise the host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// PropertyFlag collects repeated key=value flag values. A later value for
// the same key replaces the earlier one. It implements the flag.Value
// interface.
type PropertyFlag map[string]string

// String returns the collected properties as sorted key=value pairs.
func (p PropertyFlag) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// Set parses one key=value pair. The key is trimmed, the value is kept
// verbatim so that "key=" sets a blank value.
func (p PropertyFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("%w: %q", ErrInvalidProperty, s)
	}

	p[key] = value
	return nil
}

// Flags holds the parsed command line of the dandelion command.
type Flags struct {
	// System are the -D properties, stored into [SystemProperties].
	System PropertyFlag
	// InitParams are the -i properties.
	InitParams PropertyFlag
	// User are the -p properties. They win over PropertiesFile.
	User PropertyFlag
	// PropertiesFile is the -c path of a JSON or YAML user properties file.
	PropertiesFile string
	// AssetsFile is the -assets path of a JSON or YAML asset manifest served
	// by the diagnostics asset endpoint.
	AssetsFile string
	// ServeAddress is the -a address to serve diagnostics on. Empty means
	// print the configuration and exit.
	ServeAddress NetAddress
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	-D key=value  system property, repeatable
//	-i key=value  init parameter, repeatable
//	-p key=value  user property, repeatable
//	-c/-config    JSON or YAML user properties file path
//	-assets       JSON or YAML asset manifest path
//	-a            serve diagnostics on [host]:port
func ParseFlags(name string, args []string) (*Flags, error) {
	f := &Flags{
		System:     PropertyFlag{},
		InitParams: PropertyFlag{},
		User:       PropertyFlag{},
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(f.System, "D", "System property key=value (repeatable)")
	fs.Var(f.InitParams, "i", "Init parameter key=value (repeatable)")
	fs.Var(f.User, "p", "User property key=value (repeatable)")
	fs.StringVar(&f.PropertiesFile, "c", "", "JSON or YAML user properties file path")
	fs.StringVar(&f.PropertiesFile, "config", "", "JSON or YAML user properties file path (alias)")
	fs.StringVar(&f.AssetsFile, "assets", "", "JSON or YAML asset manifest path")
	fs.Var(&f.ServeAddress, "a", "Serve diagnostics on host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}

	return f, nil
}

// ApplySystemProperties stores every -D property into [SystemProperties].
func (f *Flags) ApplySystemProperties() error {
	return SystemProperties.Merge(f.System, true)
}
