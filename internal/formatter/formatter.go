// package formatter exports playlist contents to CSV, Markdown, and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/player"
)

// ExportToCSV converts a playlist and its videos to CSV with columns: ID, Title, URL, VideoID
func ExportToCSV(playlist *models.Playlist, videos []models.PlaylistVideo) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "URL", "VideoID"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, video := range videos {
		record := []string{
			strconv.FormatInt(video.ID, 10),
			video.Label(),
			video.YoutubeURL,
			player.ExtractVideoID(video.YoutubeURL),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist and its videos to a Markdown listing
func ExportToMarkdown(playlist *models.Playlist, videos []models.PlaylistVideo) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("**Videos**: %d\n\n", len(videos)))

	for i, video := range videos {
		buf.WriteString(fmt.Sprintf("%d. [%s](%s)\n", i+1, video.Label(), video.YoutubeURL))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist and its videos to a plain text listing
func ExportToText(playlist *models.Playlist, videos []models.PlaylistVideo) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s (%d videos)\n", playlist.Name, len(videos)))
	for i, video := range videos {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, video.Label(), video.YoutubeURL))
	}

	return buf.Bytes()
}
