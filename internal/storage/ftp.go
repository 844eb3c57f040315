package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

// FTPConfig holds FTP server connection settings
type FTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	BaseDir  string
}

type ftpClient struct {
	cfg FTPConfig
}

// NewFTPClient returns a Client backed by an FTP server. Connections are
// dialed per operation; the upload volume here does not justify pooling.
func NewFTPClient(cfg FTPConfig) Client {
	return &ftpClient{cfg: cfg}
}

func (c *ftpClient) connect(ctx context.Context) (*ftp.ServerConn, error) {
	addr := fmt.Sprintf("%s:%s", c.cfg.Host, c.cfg.Port)
	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ftp server: %w", err)
	}
	if err := conn.Login(c.cfg.User, c.cfg.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("failed to login to ftp server: %w", err)
	}
	return conn, nil
}

func (c *ftpClient) Upload(ctx context.Context, remotePath string, data io.Reader) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Quit()

	full := path.Join(c.cfg.BaseDir, remotePath)
	if err := c.ensureDir(conn, path.Dir(full)); err != nil {
		return err
	}
	if err := conn.Stor(full, data); err != nil {
		return fmt.Errorf("failed to store file %s: %w", remotePath, err)
	}
	return nil
}

func (c *ftpClient) Delete(ctx context.Context, remotePath string) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Quit()

	if err := conn.Delete(path.Join(c.cfg.BaseDir, remotePath)); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", remotePath, err)
	}
	return nil
}

func (c *ftpClient) List(ctx context.Context, dir string) ([]string, error) {
	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Quit()

	entries, err := conn.List(path.Join(c.cfg.BaseDir, dir))
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type == ftp.EntryTypeFile {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

func (c *ftpClient) ensureDir(conn *ftp.ServerConn, dir string) error {
	if dir == "" || dir == "/" || dir == "." {
		return nil
	}
	parts := strings.Split(strings.Trim(dir, "/"), "/")
	current := ""
	for _, part := range parts {
		current += "/" + part
		// MakeDir fails when the directory exists; that is fine
		_ = conn.MakeDir(current)
	}
	return nil
}
