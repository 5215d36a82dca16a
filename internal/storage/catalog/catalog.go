package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jgivc/extprobe/internal/common"
	"github.com/jgivc/extprobe/internal/entity"
	"github.com/spf13/afero"
)

var jsonNull = []byte("null")

// object is one decoded json object. Keys are matched exactly, keys that
// differ only in case are unknown fields.
type object map[string]json.RawMessage

type catalogStorage struct {
	fs  afero.Fs
	log *slog.Logger
}

func NewStorage(log *slog.Logger) *catalogStorage {
	return NewStorageWithFS(afero.NewOsFs(), log)
}

func NewStorageWithFS(fs afero.Fs, log *slog.Logger) *catalogStorage {
	return &catalogStorage{
		fs:  fs,
		log: log.With(slog.String("item", "CatalogStorage")),
	}
}

// Load reads the catalog file. On error no extensions are returned.
func (s *catalogStorage) Load(path string) ([]entity.Extension, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.log.Error("Cannot read catalog", slog.String("path", path), slog.Any("error", err))

		return nil, common.NewError(common.KindIO, "read "+path, err)
	}

	// json.Unmarshal fails on anything after the top level value.
	var objects []object
	if err := json.Unmarshal(data, &objects); err != nil {
		s.log.Error("Cannot decode catalog", slog.String("path", path), slog.Any("error", err))

		return nil, common.NewError(common.KindParse, "decode "+path, err)
	}

	exts := make([]entity.Extension, 0, len(objects))
	for i, obj := range objects {
		ext, err := toExtension(obj)
		if err != nil {
			s.log.Error("Invalid catalog entry", slog.String("path", path), slog.Int("index", i), slog.Any("error", err))

			return nil, common.NewError(common.KindParse, fmt.Sprintf("decode %s: extension %d", path, i), err)
		}

		exts = append(exts, ext)
	}

	s.log.Info("Catalog loaded", slog.String("path", path), slog.Int("count", len(exts)))

	return exts, nil
}

func toExtension(obj object) (entity.Extension, error) {
	if obj == nil {
		return entity.Extension{}, fmt.Errorf("extension is null")
	}

	var (
		ext     entity.Extension
		sources []object
	)

	if err := decodeFields(obj,
		field{"name", &ext.Name},
		field{"pkg", &ext.Pkg},
		field{"apk", &ext.Apk},
		field{"lang", &ext.Lang},
		field{"code", &ext.Code},
		field{"version", &ext.Version},
		field{"nsfw", &ext.NSFW},
		field{"sources", &sources},
	); err != nil {
		return entity.Extension{}, err
	}

	ext.Sources = make([]entity.Source, 0, len(sources))
	for i, srcObj := range sources {
		if srcObj == nil {
			return entity.Extension{}, fmt.Errorf("source %d is null", i)
		}

		var src entity.Source
		if err := decodeFields(srcObj,
			field{"name", &src.Name},
			field{"lang", &src.Lang},
			field{"id", &src.ID},
			field{"baseUrl", &src.BaseURL},
		); err != nil {
			return entity.Extension{}, fmt.Errorf("source %d: %w", i, err)
		}

		ext.Sources = append(ext.Sources, src)
	}

	return ext, nil
}

type field struct {
	name string
	dst  any
}

// decodeFields requires every field to be present and not null.
func decodeFields(obj object, fields ...field) error {
	for _, f := range fields {
		raw, ok := obj[f.name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return fmt.Errorf("missing field `%s`", f.name)
		}

		if err := json.Unmarshal(raw, f.dst); err != nil {
			return fmt.Errorf("invalid field `%s`: %w", f.name, err)
		}
	}

	return nil
}
