package main

import (
	"flag"
	"os"

	"github.com/taxoblog/taxoblog/blogfs"
	"github.com/taxoblog/taxoblog/bloglib"
	"github.com/taxoblog/taxoblog/common/loggers"
	"github.com/taxoblog/taxoblog/deps"
)

func main() {
	var (
		workingDir = flag.String("source", "", "the blog source dir, defaults to the working dir")
		configFile = flag.String("config", "", "the config file, defaults to config.toml in the source dir")
	)
	flag.Parse()

	log := loggers.NewDefaultLogger()

	if *workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Errorf("resolve working dir: %s", err)
			os.Exit(1)
		}
		*workingDir = wd
	}

	cfg, err := bloglib.LoadConfig(bloglib.ConfigSourceDescriptor{
		Fs:         blogfs.Os,
		WorkingDir: *workingDir,
		Filename:   *configFile,
	})
	if err != nil {
		log.Errorf("load config: %s", err)
		os.Exit(1)
	}

	fs := blogfs.New(cfg, *workingDir)

	site, err := bloglib.NewSite(deps.DepsCfg{
		Logger: log,
		Fs:     fs,
		Cfg:    cfg,
	})
	if err != nil {
		log.Errorf("create site: %s", err)
		os.Exit(1)
	}

	if err := site.Build(); err != nil {
		log.Errorf("build site: %s", err)
		os.Exit(1)
	}
}
