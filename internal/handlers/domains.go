package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/seuros/kigen/internal/logging"
	"github.com/seuros/kigen/internal/reltime"
	"github.com/seuros/kigen/internal/tezdomains"
)

var nowFunc = time.Now

// Domains serves the expired-domains feed for the page's infinite scroll.
type Domains struct {
	src        tezdomains.Source
	detailBase string
	log        *zap.Logger
}

// NewDomains builds the feed handler. detailBase is the external detail
// page prefix each row links to.
func NewDomains(src tezdomains.Source, detailBase string) *Domains {
	if !strings.HasSuffix(detailBase, "/") {
		detailBase += "/"
	}
	return &Domains{
		src:        src,
		detailBase: detailBase,
		log:        logging.With(zap.String("component", "handlers")),
	}
}

// List handles GET /api/domains?after=<cursor>. A failed upstream fetch is
// logged and degrades to an empty page with has_next_page false; the caller
// never sees an error state.
func (h *Domains) List(c fiber.Ctx) error {
	after := c.Query("after")

	page, err := h.src.ExpiredPage(c.Context(), after)
	if err != nil {
		h.log.Warn("expired domains fetch failed",
			zap.String("after", after),
			zap.Error(err))
		return c.JSON(DomainsResponse{Data: []DomainRow{}})
	}

	now := nowFunc()
	rows := make([]DomainRow, 0, len(page.Domains))
	for _, d := range page.Domains {
		rows = append(rows, DomainRow{
			Name:      d.Name,
			ExpiresAt: d.ExpiresAt,
			Expired:   reltime.Since(now, d.ExpiresAt),
			DetailURL: h.detailBase + url.PathEscape(d.Name),
		})
	}

	return c.JSON(DomainsResponse{Data: rows, PageInfo: page.PageInfo})
}
