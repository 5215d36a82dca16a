package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jgivc/extprobe/internal/common"
	"github.com/jgivc/extprobe/internal/entity"
)

const (
	serviceName = "probe"
)

type Report struct {
	URL        string
	StatusCode int
	Available  bool
}

func (r Report) String() string {
	if r.Available {
		return fmt.Sprintf("%s is available", r.URL)
	}

	return fmt.Sprintf("%s responded with %d", r.URL, r.StatusCode)
}

type probeService struct {
	cl  *http.Client
	out io.Writer
	log *slog.Logger
}

// NewProbeService writes one report line per probe to out. No timeout is set
// on requests beyond what cl itself has.
func NewProbeService(cl *http.Client, out io.Writer, log *slog.Logger) *probeService {
	if cl == nil {
		cl = http.DefaultClient
	}

	return &probeService{
		cl:  cl,
		out: out,
		log: log.With(slog.String("service", serviceName)),
	}
}

func (p *probeService) Probe(ctx context.Context, url string) (Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Report{}, common.NewError(common.KindNetwork, "probe "+url, err)
	}

	resp, err := p.cl.Do(req)
	if err != nil {
		p.log.Error("Cannot probe source", slog.String("url", url), slog.Any("error", err))

		return Report{}, common.NewError(common.KindNetwork, "probe "+url, err)
	}
	resp.Body.Close()

	report := Report{
		URL:        url,
		StatusCode: resp.StatusCode,
		Available:  resp.StatusCode == http.StatusOK,
	}

	p.log.Debug("Source probed", slog.String("url", url), slog.Int("status", resp.StatusCode))

	if _, err := fmt.Fprintln(p.out, report.String()); err != nil {
		return report, common.NewError(common.KindIO, "write report", err)
	}

	return report, nil
}

/*
ProbeAll probes every source of exts, extensions first then sources in listed order.
It stops at the first error, later sources are not probed.
*/
func (p *probeService) ProbeAll(ctx context.Context, exts []entity.Extension) ([]Report, error) {
	var reports []Report
	for i := range exts {
		for _, url := range exts[i].BaseURLs() {
			report, err := p.Probe(ctx, url)
			if err != nil {
				return reports, fmt.Errorf("cannot probe extension %s: %w", exts[i].Name, err)
			}

			reports = append(reports, report)
		}
	}

	p.log.Info("Sources probed", slog.Int("count", len(reports)))

	return reports, nil
}
