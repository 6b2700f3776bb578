package main

import (
	"log"
	"net/http"

	"github.com/opencanteen/canteen/internal/config"
	"github.com/opencanteen/canteen/internal/db"
	"github.com/opencanteen/canteen/internal/fieldcrypt"
	"github.com/opencanteen/canteen/internal/store"
	"github.com/opencanteen/canteen/internal/web"
)

func main() {
	cfg := config.Load()

	key, err := fieldcrypt.LoadKey(cfg.FieldKey, cfg.KeyFile)
	if err != nil {
		log.Fatalf("load field key: %v", err)
	}
	codec, err := fieldcrypt.NewCodec(key)
	if err != nil {
		log.Fatalf("field codec: %v", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	log.Printf("database ready (sqlite, %s)", cfg.DBPath)

	st := store.New(conn, codec)
	if cfg.Seed {
		if err := st.SeedSampleMenu(); err != nil {
			log.Fatalf("seed sample menu: %v", err)
		}
	}

	r := web.Router(st)

	log.Printf("canteen listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
