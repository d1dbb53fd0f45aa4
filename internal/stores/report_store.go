package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"log-stats/internal/models"
	"log-stats/internal/shared/filestorages"
	"log-stats/internal/shared/ulid"
)

const reportExt = ".json"

// ReportStore archives finished reports under their run id. Archived reports are immutable.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Save(ctx context.Context, record *models.ReportRecord) error
	Get(ctx context.Context, runID string) (*models.ReportRecord, error)
	// List returns the archived run ids, oldest first.
	List(ctx context.Context) ([]string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Save(ctx context.Context, record *models.ReportRecord) error {
	if !ulid.IsValid(record.RunID) {
		return errInvalidRunID(record.RunID)
	}

	jsonData, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errInternalStoreFailed("marshalReport", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(record.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return errReportAlreadyExists(record.RunID, err)
		}
		return errInternalStoreFailed("putReport", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, runID string) (*models.ReportRecord, error) {
	if !ulid.IsValid(runID) {
		return nil, errInvalidRunID(runID)
	}

	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, errReportNotFound(runID, err)
		}
		return nil, errInternalStoreFailed("getReport", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, errInternalStoreFailed("readReport", err)
	}
	var record models.ReportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errInternalStoreFailed("unmarshalReport", err)
	}
	return &record, nil
}

func (s *reportStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, errInternalStoreFailed("listReports", err)
	}

	runIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		runID, ok := strings.CutSuffix(path.Base(key), reportExt)
		if !ok || !ulid.IsValid(runID) {
			continue
		}
		runIDs = append(runIDs, runID)
	}
	// ULIDs sort lexically in creation order and the storage lists keys sorted.
	return runIDs, nil
}

func (s *reportStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s%s", s.dir, runID, reportExt)
}
