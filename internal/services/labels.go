package services

import (
	"context"
	"recontrack/internal/dao"
	"recontrack/internal/models"
)

// ReconcileLabels computes which desired label names are not yet associated.
// Matching is case-sensitive exact. The edit path is add-only: names present
// in current but absent from desired are left alone, removal is the caller's
// call. Returned names keep the order of desired, with repeats collapsed, so
// replaying the same desired set yields no additions.
func ReconcileLabels(current []models.Label, desired []string) []string {
	have := make(map[string]struct{}, len(current))
	for _, label := range current {
		have[label.Name] = struct{}{}
	}

	var additions []string
	for _, name := range desired {
		if _, ok := have[name]; ok {
			continue
		}
		have[name] = struct{}{}
		additions = append(additions, name)
	}
	return additions
}

// applyLabelAdditions resolves each addition through the label registry and
// appends the canonical label to the subdomain's association set.
func applyLabelAdditions(ctx context.Context, labelDao dao.LabelDAO, subdomain *models.Subdomain, additions []string) error {
	for _, name := range additions {
		label, err := labelDao.GetOrCreate(ctx, name)
		if err != nil {
			return err
		}
		subdomain.Labels = append(subdomain.Labels, *label)
	}
	return nil
}
