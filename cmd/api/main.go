package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nachna/application"
	"nachna/config"
	"nachna/modules/catalog"
	"nachna/modules/notification"
	"nachna/modules/order"
	"nachna/modules/order/payment"
	"nachna/modules/rewards"
	"nachna/modules/rewards/redemption"
	"nachna/shared/common/logger"
	"nachna/shared/common/module"
	"nachna/shared/common/observability"
	"nachna/shared/common/storage/sqldb"
	"nachna/shared/common/storage/sqldb/transactor"
)

func main() {
	closeLog, err := logger.Init()
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	config, err := config.Load()
	if err != nil {
		panic(err.Error())
	}

	dbCtx, closeDB, err := sqldb.NewDBContext(config.DSN)
	if err != nil {
		panic(err.Error())
	}
	defer func() { // ใช่ท่า IIFE เพราะต้องการแสดง error ถ้าปิดไม่ได้
		if err := closeDB(); err != nil {
			logger.Log().Error(fmt.Sprintf("Error closing database: %v", err))
		}
	}()

	shutdownOtlp, err := observability.InitOtlp(context.Background(), config.OtlpEndpoint, "nachna-api")
	if err != nil {
		panic(err.Error())
	}
	defer func() {
		if err := shutdownOtlp(context.Background()); err != nil {
			logger.Log().Error(fmt.Sprintf("Error shutting down otlp: %v", err))
		}
	}()

	app := application.New(*config)

	transactor, dbtxCtx := transactor.New(dbCtx.DB(),
		// nested transaction ใช้ Savepoints เพราะ checkout เรียกตัดยอด point ซ้อนข้างใน
		transactor.WithNestedTransactionStrategy(transactor.NestedTransactionsSavepoints))
	mCtx := module.NewModuleContext(transactor, dbtxCtx)

	policy := redemption.Policy{
		ExchangeRate:        config.Rewards.ExchangeRate,
		CapFraction:         config.Rewards.CapFraction,
		RecommendedFraction: config.Rewards.RecommendedFraction,
		EarnRate:            config.Rewards.EarnRate,
	}
	gateway := payment.NewStubGateway(config.GatewayHost + config.GatewayBasePath)

	// ลำดับสำคัญ: notification ต้องมาก่อนเพราะโมดูลอื่น subscribe event ใส่ bus เดียวกัน
	if err := app.RegisterModules(
		notification.NewModule(mCtx),
		catalog.NewModule(mCtx),
		rewards.NewModule(mCtx, policy),
		order.NewModule(mCtx, gateway),
	); err != nil {
		panic(err.Error())
	}

	app.Run()

	// รอสัญญาณการปิด
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log().Info("Shutting down...")

	app.Shutdown()

	logger.Log().Info("Shutdown complete.")
}
