package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vcfready/vcfready/internal/blob"
	"github.com/vcfready/vcfready/pkg/readiness"
	"github.com/vcfready/vcfready/pkg/surface"
)

// PublishReport renders result as a Markdown report and writes it to store
// together with ledgerJSON, the ledger it was computed from. An empty title
// uses the renderer's default heading.
func PublishReport(ctx context.Context, store blob.Storage, assessmentID, title string, ledgerJSON []byte, result *readiness.Result, now time.Time) (*Report, error) {
	data := (&surface.MarkdownRenderer{Title: title}).BuildReport(result)

	exportID := uuid.NewString()
	if err := store.PutExport(ctx, assessmentID, exportID, ledgerJSON); err != nil {
		return nil, fmt.Errorf("store ledger export: %w", err)
	}

	rep := &Report{
		ID:           uuid.NewString(),
		AssessmentID: assessmentID,
		Title:        data.Title,
		Conclusion:   data.Conclusion,
		Score:        result.Score,
		Label:        result.Label,
		Body:         data.Body,
		ExportID:     exportID,
		CreatedAt:    now.UTC(),
	}
	repJSON, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := store.PutReport(ctx, rep.ID, repJSON); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}
	return rep, nil
}
