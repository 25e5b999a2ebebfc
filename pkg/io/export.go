package io

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// ExportFile writes data to path atomically.
func ExportFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailure, err, "create %s", path)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWriteFailure, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWriteFailure, err, "close %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWriteFailure, err, "rename into %s", path)
	}
	return nil
}
