package config

import (
	"context"
	"database/sql"
	"log"
	"net"
	"time"

	"busfinder/internal/db"
	"busfinder/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// ConnectionProvider opens a brand-new connection for every call. There is
// no pool: each handle is capped at one connection and is closed by its caller.
type ConnectionProvider struct {
	DB DBConfig

	// PingTimeout bounds the reachability check done on every Open.
	PingTimeout time.Duration

	// driverName and dsn are swapped in tests.
	driverName string
	dsn        string
}

func NewConnectionProvider(cfg DBConfig) ConnectionProvider {
	return ConnectionProvider{DB: cfg, PingTimeout: 3 * time.Second}
}

// DSN renders the go-sql-driver data source name.
func (p ConnectionProvider) DSN() string {
	mc := mysql.NewConfig()
	mc.User = p.DB.User
	mc.Passwd = p.DB.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(p.DB.Host, p.DB.Port)
	mc.DBName = p.DB.Name
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Timeout = 5 * time.Second
	mc.ReadTimeout = 30 * time.Second
	mc.WriteTimeout = 30 * time.Second
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Open returns a verified connection. Failures come back as domain.ConnectionError.
func (p ConnectionProvider) Open(ctx context.Context) (db.Conn, error) {
	driver := p.driverName
	if driver == "" {
		driver = "mysql"
	}

	dsn := p.dsn
	if dsn == "" {
		dsn = p.DSN()
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("[DB] action=open error=%v", err)
		return nil, domain.ConnectionError{Err: err}
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	timeout := p.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		log.Printf("[DB] action=ping host=%s db=%s error=%v", p.DB.Host, p.DB.Name, err)
		return nil, domain.ConnectionError{Err: err}
	}
	return conn, nil
}

// FatalConnection ends the process after a connection failure has been shown to the user.
func FatalConnection(err error) {
	log.Fatalf("Error connecting to database: %v", err)
}
