// useradd seeds a user into the configured user store.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/2beens/plainsite/internal"
	"github.com/2beens/plainsite/internal/config"
	"github.com/2beens/plainsite/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	name := flag.String("name", "", "username to add")
	password := flag.String("password", "", "password; read from stdin when empty")
	flag.Parse()

	if *name == "" {
		fmt.Println("usage: useradd -name <username> [-password <password>] [-env dev] [-config ./config.toml]")
		os.Exit(2)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	if *password == "" {
		fmt.Print("password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %s", err)
		}
		*password = strings.TrimRight(line, "\r\n")
	}
	if *password == "" {
		log.Fatalln("empty password")
	}

	if cfg.UserStore == config.UserStoreMemory {
		log.Warnln("user store is [memory], the user will be gone once this command exits")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := internal.OpenUserStore(ctx, internal.OpenUserStoreParams{
		Config:           cfg,
		PostgresPassword: os.Getenv("PLAINSITE_PG_PASS"),
		RedisPassword:    os.Getenv("PLAINSITE_REDIS_PASS"),
	})
	if err != nil {
		log.Fatalf("open user store: %s", err)
	}
	defer backend.Close()

	passwordHash, err := pkg.NewBcryptHasher(cfg.BcryptCost).Hash(*password)
	if err != nil {
		log.Errorf("hash password: %s", err)
		return
	}

	created, err := backend.Store.Insert(ctx, *name, passwordHash)
	if err != nil {
		log.Errorf("add user [%s]: %s", *name, err)
		return
	}
	if !created {
		log.Errorf("user [%s] already exists", *name)
		return
	}

	log.Infof("user [%s] added to [%s] store", *name, cfg.UserStore)
}
