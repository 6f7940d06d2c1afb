package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/core/banner"
	"github.com/trezcool/hadir/core/display"
	"github.com/trezcool/hadir/services/logger"
	"github.com/trezcool/hadir/storage/database"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "HADIR : ", log.LstdFlags|log.Lshortfile), conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up storage
	kv, closeStorage, err := database.NewStorage(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}

	var db *sqlx.DB
	if kvStore, ok := kv.(*database.KVStore); ok {
		db = kvStore.DB()
	}

	// start CLI
	cli := commandLine{
		conf:          conf,
		logger:        logger,
		db:            db,
		attendanceSvc: attendance.NewService(attendance.NewStore(kv, logger, conf.DateLayout)),
		banners:       banner.NewList(kv, logger),
		prefs:         display.NewPreferences(kv, logger),
		in:            os.Stdin,
		out:           os.Stdout,
	}
	err = cli.run(os.Args)
	_ = closeStorage()
	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
