package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/flagx"
)

// serverFlags lists the flags owned by the server config; anything else in
// args belongs to someone else (e.g. the operator CLI) and is skipped.
var serverFlags = []string{"-a", "-d", "-m", "-s", "-t", "-k", "-o", "-l"}

// parseFlags populates config from command-line flags.
//
//	-a string   HTTP bind address (":8000")
//	-d string   store DSN
//	-m string   mongo database name
//	-s string   session token secret
//	-t int      session token validity, minutes
//	-k int      bcrypt cost
//	-o string   comma-separated extra CORS origins
//	-l string   log level
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "store DSN")
	fs.StringVar(&config.MongoDatabase, "m", config.MongoDatabase, "mongo database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.PasswordHashCost, "k", config.PasswordHashCost, "bcrypt cost")
	origins := fs.String("o", "", "extra CORS origins, comma separated")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		}
	})
	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			config.AllowedOrigins = appendUnique(config.AllowedOrigins, o)
		}
	}
	return nil
}
