// Package pg reads the directory-service settings from the appliance
// configuration database
package pg

import (
	"context"
	"os"
	"os/user"

	"github.com/jackc/pgx/v4"
)

// Conn is a smart PostgreSQL connection, which means that it has layers of methods
type Conn struct {
	connParams ConnParams
	conn       *pgx.Conn
}

// NewConn returns a connection with connection parameters set
func NewConn(connParams ConnParams) (c *Conn) {
	return &Conn{
		connParams: connParams,
	}
}

// DBName retrieves and returns the name of the database that Conn is connected to
func (c *Conn) DBName() (dbName string) {
	value, ok := c.connParams[ConnParamDBName]
	if ok {
		return value
	}
	value = os.Getenv("PGDATABASE")
	if value != "" {
		return value
	}
	return c.UserName()
}

// UserName retrieves and returns the name of the user that Conn is using for its connection to the database
func (c *Conn) UserName() (userName string) {
	value, ok := c.connParams[ConnParamUser]
	if ok {
		return value
	}
	value = os.Getenv("PGUSER")
	if value != "" {
		return value
	}
	currentUser, err := user.Current()
	if err != nil {
		panic("cannot determine current user")
	}
	return currentUser.Username
}

// ConnParams returns a copy of the connection parameters
func (c *Conn) ConnParams() (params ConnParams) {
	return c.connParams.Clone()
}

// Connect can be used to connect to Postgres.
// If there already is an open connection, this just returns the connection.
// If not, it will instantiate a new pgx.Conn, connect to Postgres, and store it internally before returning it.
func (c *Conn) Connect() (err error) {
	if c.conn != nil {
		if !c.conn.IsClosed() {
			return nil
		}
		c.conn = nil
	}
	c.conn, err = pgx.Connect(context.Background(), c.ConnParams().String())
	if err != nil {
		c.conn = nil
		return err
	}
	log.Debugf("connected to database %s as user %s", c.DBName(), c.UserName())
	return nil
}

// runQueryRow runs a query that returns at most one row and scans it into
// dest. pgx.ErrNoRows passes through untouched, so callers can translate
// absence into their own semantics.
func (c *Conn) runQueryRow(query string, args []any, dest ...any) (err error) {
	err = c.Connect()
	if err != nil {
		return err
	}
	return c.conn.QueryRow(context.Background(), query, args...).Scan(dest...)
}
