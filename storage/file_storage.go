package storage

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
	"sync"
)

const defaultDir = "data"

// FileStorage хранит объекты в yaml файлах, по файлу на объект
type FileStorage struct {
	dir string
	mx  sync.Map
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		dir = defaultDir
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create storage dir error")
	}

	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) StoreObject(name string, object any) error {
	s.lock(name)
	defer s.unlock(name)

	data, err := yaml.Marshal(object)
	if err != nil {
		return errors.Wrap(err, "yaml marshal error")
	}

	// пишем во временный файл, чтобы при падении не остался обрезанный yaml
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "StoreObject error")
	}

	return errors.Wrap(os.Rename(tmp, s.path(name)), "StoreObject error")
}

func (s *FileStorage) RestoreObject(name string) (object map[string]interface{}, err error) {
	err = s.RestoreAsObject(name, func(data []byte) error {
		return errors.Wrap(yaml.Unmarshal(data, &object), "yaml unmarshal error")
	})

	return
}

func (s *FileStorage) RestoreAsObject(name string, callback func(data []byte) error) error {
	s.lock(name)
	defer s.unlock(name)

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return errors.Wrap(err, "open file error")
	}

	return callback(data)
}

func (s *FileStorage) DeleteObject(name string) error {
	s.lock(name)
	defer s.unlock(name)

	return os.Remove(s.path(name))
}

func (s *FileStorage) path(name string) string {
	return filepath.Join(s.dir, name) + ".yaml"
}

func (s *FileStorage) lock(key string) {
	l, _ := s.mx.LoadOrStore(key, &sync.Mutex{})
	l.(*sync.Mutex).Lock()
}

func (s *FileStorage) unlock(key string) {
	l, _ := s.mx.LoadOrStore(key, &sync.Mutex{})
	l.(*sync.Mutex).Unlock()
}
