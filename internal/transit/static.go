package transit

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jamespfennell/gtfs"
)

func rawFeedData(source string, isLocalFile bool) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer resp.Body.Close() // nolint

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

func loadStaticFeed(source string, isLocalFile bool) (*gtfs.Static, error) {
	b, err := rawFeedData(source, isLocalFile)
	if err != nil {
		return nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	return staticData, nil
}

// refreshStaticFeed re-downloads URL-backed feeds every 24 hours until
// shutdown.
func (manager *Manager) refreshStaticFeed() {
	defer manager.wg.Done()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			staticData, err := loadStaticFeed(manager.gtfsSource, false)
			if err != nil {
				slog.Error("error refreshing straeto feed", "source", manager.gtfsSource, "error", err)
				continue
			}
			manager.setStaticFeed(staticData)
		case <-manager.shutdownChan:
			return
		}
	}
}
