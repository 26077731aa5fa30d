// Package feed_controller streams live section listings over a websocket.
// The client sends search and paging commands, the server pushes every
// state transition of the underlying fetcher.
package feed_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/section"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The storefront app connects from its own origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// command is one client message on the feed socket.
type command struct {
	Action string `json:"action"` // set_search | submit | load_more | retry
	Query  string `json:"query"`
}

// SectionFeed godoc
// @Summary Live section listing feed
// @Description Websocket endpoint streaming listing snapshots for one category while the client types, submits and pages
// @Tags store
// @Param family path string true "Category id (fa_name)"
// @Param storename query string false "Store name"
// @Param brands query string false "Comma-separated brand ids"
// @Success 101 "Switching protocols"
// @Router /store/sections/:family/feed [get]
func SectionFeed(c *gin.Context) {
	storeName := c.Query("storename")
	if storeName == "" {
		storeName = config.DefaultStoreName()
	}

	ctx, cancel := config.WithTimeout()
	company, err := services.GetUpstreamClient().CompanyByName(ctx, storeName)
	cancel()
	if err != nil {
		log.Printf("[feed.section] failed to resolve store %q: %v", storeName, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Store unavailable"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[feed.section] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	family := c.Param("family")
	brands := splitBrands(c.Query("brands"))
	client := services.GetUpstreamClient()

	src := section.SourceFunc(func(ctx context.Context, query string, page int) ([]models.Item, int, error) {
		return client.ItemsByFamily(ctx, company.ID, family, brands, query, page, 20)
	})

	// Writes are serialized: OnChange fires from fetcher goroutines.
	var writeMu sync.Mutex
	fetcher := section.NewFetcher(src, section.Options{
		OnChange: func(snap section.Snapshot) {
			writeMu.Lock()
			defer writeMu.Unlock()
			if err := conn.WriteJSON(snap); err != nil {
				log.Printf("[feed.section] push failed: %v", err)
			}
		},
	})
	defer fetcher.Close()

	// Initial unfiltered page.
	fetcher.SubmitSearch("")

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[feed.section] read failed: %v", err)
			}
			return
		}

		switch cmd.Action {
		case "set_search":
			fetcher.SetSearch(cmd.Query)
		case "submit":
			fetcher.SubmitSearch(cmd.Query)
		case "load_more":
			fetcher.LoadMore()
		case "retry":
			fetcher.Retry()
		default:
			writeMu.Lock()
			conn.WriteJSON(gin.H{"error": "unknown action"})
			writeMu.Unlock()
		}
	}
}

func splitBrands(raw string) []string {
	if raw == "" {
		return nil
	}
	var brands []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brands = append(brands, b)
		}
	}
	return brands
}
