package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/imagefeed/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-t string   transport: http or grpc
//	-a string   address and port of the identity gateway
//	-b string   provider REST API base URL
//	-d string   path to the local database
//	-r int      request timeout in seconds
//	-l string   log level
//
// Only the flags listed above are picked out of args, using
// flagx.FilterArgs, so other components may own the rest.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-t", "-a", "-b", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Transport, "t", cfg.Transport, "transport: http or grpc")
	fs.StringVar(&cfg.GRPCEndpointAddr, "a", cfg.GRPCEndpointAddr, "address and port of the identity gateway")
	fs.StringVar(&cfg.APIBaseURL, "b", cfg.APIBaseURL, "provider API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only an explicit -r overrides; the default above is rounded to seconds.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
	return nil
}
