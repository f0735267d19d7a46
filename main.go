package main

import (
	"os"
	"path/filepath"

	"binlog-dump/binlog"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const configFileName = "binlog-dump.toml"

func main() {

	cfg, err := loadConfig(configFileName)
	check(err)

	logger, props, err := log.InitLogger(&log.Config{Level: cfg.LogLevel})
	check(err)
	log.ReplaceGlobals(logger, props)

	if len(os.Args) < 2 {
		log.Fatal("usage: binlog-dump <binlog file>")
	}
	path := os.Args[1]

	pos, err := binlog.ReadPos(cfg.PosFile)
	check(err)

	file, err := binlog.OpenBinlogFile(path)
	check(err)
	defer file.Close()

	reader := binlog.NewReader(file)
	if pos.Name == filepath.Base(path) && pos.Pos > 0 {
		// resume where the previous run on this file stopped
		reader = binlog.NewReaderAt(file, uint64(pos.Pos))
	}

	count := 0
	for {
		ev, err := reader.GetEvent()
		check(err)
		if ev == nil {
			break
		}
		count++

		log.Info("event",
			zap.Stringer("type", ev.Header.EventType),
			zap.Uint32("timestamp", ev.Header.Timestamp),
			zap.Uint32("serverID", ev.Header.ServerID),
			zap.Uint32("size", ev.Header.EventSize),
			zap.Uint64("offset", ev.Offset))

		if !cfg.DecodeBodies {
			continue
		}
		data, err := ev.DecodeData()
		check(err)
		if fde, ok := data.(*binlog.FormatDescriptionEvent); ok {
			log.Info("format description",
				zap.Uint16("binlogVersion", fde.BinlogVersion),
				zap.String("serverVersion", fde.ServerVersion),
				zap.Uint32("createTimestamp", fde.CreateTimestamp),
				zap.Uint8("commonHeaderLen", fde.EventHeaderLength))
		}
	}

	nextPos := binlog.Position{Name: filepath.Base(path), Pos: uint32(reader.Offset())}
	err = binlog.WritePos(cfg.PosFile, nextPos)
	check(err)

	log.Info("done", zap.Int("events", count))

}

func check(e error) {
	if e != nil {
		panic(e)
	}
}
