package app

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"puz_shelf/internal/db"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// SubjectImported carries an ImportEvent for every newly stored puzzle.
const SubjectImported = "puzzles.imported"

type Service struct {
	Queries *db.Queries

	db *sql.DB

	NatsServer *server.Server

	NC *nats.Conn

	StartTime int64

	// tinylfu is not safe for concurrent use
	cacheMu sync.Mutex
	cache   *tinylfu.T[string, *PuzzleView]
}

type ImportEvent struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func NewService(queries *db.Queries, dbConn *sql.DB, cacheSize int) *Service {
	if cacheSize < 1 {
		cacheSize = 1
	}

	s := &Service{
		Queries:   queries,
		db:        dbConn,
		StartTime: time.Now().UnixMilli(),
		cache:     tinylfu.New[string, *PuzzleView](cacheSize, cacheSize*10, xxhash.Sum64String),
	}

	s.startNats()

	return s
}

func (s *Service) startNats() {
	opts := &server.Options{
		Port:  -1,
		NoLog: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		log.Printf("Failed to create NATS server: %v", err)
		return
	}

	go ns.Start()

	if !ns.ReadyForConnections(2 * time.Second) {
		log.Printf("NATS server failed to become ready")
		return
	}

	log.Printf("NATS server ready at %s", ns.ClientURL())
	s.NatsServer = ns

	nc, err := nats.Connect(ns.ClientURL())
	if err != nil {
		log.Printf("NATS client failed to connect: %v", err)
		return
	}
	log.Printf("NATS client connected")
	s.NC = nc
}

func (s *Service) Shutdown() {
	if s.NC != nil {
		s.NC.Close()
	}

	if s.NatsServer != nil {
		s.NatsServer.Shutdown()
		s.NatsServer.WaitForShutdown()
	}
}

func (s *Service) BroadcastImport(p *db.Puzzle) {
	if s.NC == nil {
		log.Printf("Broadcast skipped: NATS connection is nil")
		return
	}

	msg, err := json.Marshal(ImportEvent{ID: p.ID, Title: p.Title, Author: p.Author})
	if err != nil {
		log.Printf("Encoding import event: %v", err)
		return
	}

	log.Printf("Publishing to NATS: %s -> %s", SubjectImported, p.ID)
	_ = s.NC.Publish(SubjectImported, msg)
}

// SubscribeImports calls fn for every import event until the returned
// function is called.
func (s *Service) SubscribeImports(fn func(ImportEvent)) (func(), error) {
	if s.NC == nil {
		return nil, fmt.Errorf("subscribing to %s: NATS connection is nil", SubjectImported)
	}

	sub, err := s.NC.Subscribe(SubjectImported, func(m *nats.Msg) {
		var ev ImportEvent
		if err := json.Unmarshal(m.Data, &ev); err != nil {
			log.Printf("Dropping malformed import event: %v", err)
			return
		}
		fn(ev)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", SubjectImported, err)
	}
	// make sure the server knows about the subscription before returning
	if err := s.NC.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return nil, err
	}

	return func() { _ = sub.Unsubscribe() }, nil
}
