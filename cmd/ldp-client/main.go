package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	ldpclient "github.com/ldp-client/ldp-client"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	configFilenameFlag string
	methodFlag         string
	timeoutFlag        time.Duration
	verbosityTraceFlag bool
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&methodFlag, "method", "GET", "HTTP method to use")
	flag.DurationVar(&timeoutFlag, "timeout", 30*time.Second, "Request timeout")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
}

func main() {
	flag.Parse()

	// set log level
	logLevel := zerolog.WarnLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stderr})

	url := flag.Arg(0)
	if url == "" {
		log.Fatal().Msg("Please specify a resource URL")
	}

	headers := make(http.Header)
	timeout := timeoutFlag

	if configFilenameFlag != "" {
		config, err := getConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read config")
		}
		if config.Timeout != "" {
			timeout, err = time.ParseDuration(config.Timeout)
			if err != nil {
				log.Fatal().Msgf("Invalid timeout: %s", config.Timeout)
			}
		}
		for name, value := range config.Headers {
			headers.Set(name, value)
		}
	}

	client := ldpclient.NewClient(ldpclient.Config{
		HTTP:    &http.Client{Timeout: timeout},
		Headers: headers,
	})

	ctx := context.Background()

	var res *ldpclient.Response
	var err error
	switch strings.ToLower(methodFlag) {
	case "get":
		res, err = client.Get(ctx, url)
	case "head":
		res, err = client.Head(ctx, url)
	case "options":
		res, err = client.Options(ctx, url)
	case "delete":
		res, err = client.Delete(ctx, url)
	default:
		log.Fatal().Msgf("Unsupported method: %s", methodFlag)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Request failed")
	}

	printView(res)
}

func printView(res *ldpclient.Response) {
	fmt.Printf("url: %s\n", res.URL)
	fmt.Printf("exists: %t\n", res.Exists())
	if contentType := res.ContentType(); contentType != "" {
		fmt.Printf("content-type: %s\n", contentType)
	}
	if res.Type != "" {
		fmt.Printf("type: %s\n", res.Type)
	}
	if res.ACL != "" {
		fmt.Printf("acl: %s\n", res.ACL)
	}
	if res.Meta != "" {
		fmt.Printf("meta: %s\n", res.Meta)
	}
	if res.Websocket != "" {
		fmt.Printf("updates-via: %s\n", res.Websocket)
	}
	if res.IsLoggedIn() {
		fmt.Printf("user: %s\n", res.User)
	}
	if len(res.AllowedMethods) > 0 {
		methods := make([]string, 0, len(res.AllowedMethods))
		for method := range res.AllowedMethods {
			methods = append(methods, method)
		}
		sort.Strings(methods)
		fmt.Printf("allowed: %s\n", strings.Join(methods, ", "))
	}
}
