package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/app"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/usecases/dispatching"
	"github.com/vfg2006/performance-report/pkg/log"
	"github.com/vfg2006/performance-report/pkg/utils"
)

// Executa um lote único e sai; útil em cron externo ou para reenviar um cliente
func main() {
	client := flag.String("client", "", "processa só este cliente")
	date := flag.String("date", "", "data de referência YYYY-MM-DD (padrão: hoje no fuso configurado)")
	preview := flag.Bool("preview", false, "monta o relatório do -client e imprime o JSON sem enviar")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	today, err := utils.ParseDate(*date, cfg.Location())
	if err != nil {
		logrus.WithError(err).Fatal("Data inválida, use YYYY-MM-DD")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar a aplicação")
	}
	defer application.Close()

	if *preview {
		if *client == "" {
			logrus.Fatal("-preview exige -client")
		}
		report, err := application.Dispatcher.Preview(ctx, *client, today)
		if err != nil {
			logrus.WithError(err).WithField("client", *client).Fatal("Erro ao montar prévia")
		}
		encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			logrus.WithError(err).Fatal("Erro ao escrever prévia")
		}
		return
	}

	result, err := application.Dispatcher.RunBatch(ctx, dispatching.RunOptions{
		Today:  today,
		Client: *client,
	})
	application.Metrics.ObserveBatch(result)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar o lote")
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"sent":     result.Sent,
		"skipped":  result.Skipped,
	}).Info("Lote finalizado")

	if result.Skipped > 0 {
		os.Exit(1)
	}
}
