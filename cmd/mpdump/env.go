package main

import (
	"github.com/gobeaver/beaver-kit/config"
)

// envPrefix is prepended to every variable name of Env.
const envPrefix = "MPDUMP_"

// Env holds defaults which may be set through the environment. Flags take precedence.
type Env struct {
	ReadBufferSize int   `env:"READ_BUFFER_SIZE,default:4096"`
	MaxPartSize    int   `env:"MAX_PART_SIZE,default:33554432"`
	MaxBodySize    int64 `env:"MAX_BODY_SIZE,default:536870912"`
	Preview        int   `env:"PREVIEW,default:64"`
	Chunked        bool  `env:"CHUNKED,default:false"`
	Indent         bool  `env:"INDENT,default:true"`
}

func loadEnv() (*Env, error) {
	env := &Env{}
	if err := config.Load(env, config.LoadOptions{Prefix: envPrefix}); err != nil {
		return nil, err
	}

	return env, nil
}
