package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

const cacheFileExt = ".json"

// ContractCache keeps one JSON file per contract record, named <hash>.json.
type ContractCache struct {
	dir string
}

func NewContractCache(dir string) (*ContractCache, error) {
	err := os.MkdirAll(dir, 0o755) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	return &ContractCache{dir: dir}, nil
}

func (c *ContractCache) path(hash string) string {
	return filepath.Join(c.dir, hash+cacheFileExt)
}

func (c *ContractCache) Exists(hash string) bool {
	_, err := os.Stat(c.path(hash))
	return err == nil
}

// Save writes the record unless the hash is already cached; cached records are immutable.
func (c *ContractCache) Save(hash string, rec entity.ContractRecord) (bool, error) {
	if c.Exists(hash) {
		return false, nil
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("marshal record: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, hash+"-*.tmp")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(b)
	if err != nil {
		tmp.Close()
		return false, fmt.Errorf("write temp file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return false, fmt.Errorf("close temp file: %w", err)
	}

	err = os.Rename(tmp.Name(), c.path(hash))
	if err != nil {
		return false, fmt.Errorf("rename temp file: %w", err)
	}

	return true, nil
}

func (c *ContractCache) Load(hash string) (entity.ContractRecord, error) {
	b, err := os.ReadFile(c.path(hash))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.ContractRecord{}, fmt.Errorf("contract %s: %w", hash, entity.ErrNotFound)
		}

		return entity.ContractRecord{}, fmt.Errorf("read contract %s: %w", hash, err)
	}

	var rec entity.ContractRecord

	err = json.Unmarshal(b, &rec)
	if err != nil {
		return entity.ContractRecord{}, fmt.Errorf("decode contract %s: %w", hash, err)
	}

	return rec, nil
}

// List returns every cached record ordered by hash. Undecodable files are logged and left out.
func (c *ContractCache) List() ([]entity.CachedContract, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read cache dir: %w", err)
	}

	hashes := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != cacheFileExt {
			continue
		}

		hashes = append(hashes, strings.TrimSuffix(e.Name(), cacheFileExt))
	}

	sort.Strings(hashes)

	out := make([]entity.CachedContract, 0, len(hashes))

	for _, h := range hashes {
		rec, err := c.Load(h)
		if err != nil {
			slog.Warn("skip cached contract", "hash", h, "error", err)
			continue
		}

		out = append(out, entity.CachedContract{Hash: h, Record: rec})
	}

	return out, nil
}

func (c *ContractCache) Delete(hash string) error {
	err := os.Remove(c.path(hash))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete contract %s: %w", hash, err)
	}

	return nil
}
