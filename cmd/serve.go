package cmd

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"droscher.com/CafeGargoyle/configs"
	"droscher.com/CafeGargoyle/pkg/auth"
	"droscher.com/CafeGargoyle/pkg/mail"
	"droscher.com/CafeGargoyle/pkg/repository"
	"droscher.com/CafeGargoyle/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".CafeGargoyle.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	suggestions, err := mail.NewSMTPSender(conf, logger)
	if err != nil {
		logger.Error("error configuring mail submission", zap.Error(err))

		return err
	}

	authManager := auth.NewAuthManager(conf, repo, logger)
	router := server.NewRouter(conf, repo, suggestions, authManager, logger)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           router,
	}

	logger.Info("starting server", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}
