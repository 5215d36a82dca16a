package httpadapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jgivc/extprobe/internal/common"
	"github.com/spf13/afero"
)

type fetcher struct {
	cl  *http.Client
	fs  afero.Fs
	log *slog.Logger
}

func NewFetcher(cl *http.Client, log *slog.Logger) *fetcher {
	return NewFetcherWithFS(cl, afero.NewOsFs(), log)
}

func NewFetcherWithFS(cl *http.Client, fs afero.Fs, log *slog.Logger) *fetcher {
	if cl == nil {
		cl = http.DefaultClient
	}

	return &fetcher{
		cl:  cl,
		fs:  fs,
		log: log.With(slog.String("item", "Fetcher")),
	}
}

/*
Fetch downloads url and writes the response body to path as is.
The response status is not checked, a 404 page is saved like any other body.
*/
func (f *fetcher) Fetch(ctx context.Context, url, path string) error {
	log := f.log.With(slog.String("url", url), slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return common.NewError(common.KindNetwork, "GET "+url, err)
	}

	resp, err := f.cl.Do(req)
	if err != nil {
		log.Error("Cannot fetch file", slog.Any("error", err))

		return common.NewError(common.KindNetwork, "GET "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Unexpected response status", slog.Int("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Cannot read response body", slog.Any("error", err))

		return common.NewError(common.KindNetwork, "read body of "+url, err)
	}

	if err := f.write(path, body); err != nil {
		log.Error("Cannot write file", slog.Any("error", err))

		return err
	}

	log.Info("File fetched", slog.Int("status", resp.StatusCode), slog.Int("size", len(body)))

	return nil
}

func (f *fetcher) write(path string, data []byte) error {
	file, err := f.fs.Create(path)
	if err != nil {
		return common.NewError(common.KindIO, "create "+path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()

		return common.NewError(common.KindIO, "write "+path, err)
	}

	if err := file.Close(); err != nil {
		return common.NewError(common.KindIO, fmt.Sprintf("close %s", path), err)
	}

	return nil
}
