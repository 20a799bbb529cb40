// ABOUTME: MCP resource implementations for splitfit.
// ABOUTME: Provides splitfit://summary, splitfit://splits, and splitfit://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/splitfitapp/splitfit/internal/models"
)

func (s *Server) registerResources() {
	// splitfit://summary - progress stats dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "splitfit://summary",
		Name:        "Training Summary",
		Description: "Workout count, streaks, volume, and favorite exercise",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// splitfit://splits - all splits with days and exercises
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "splitfit://splits",
		Name:        "Workout Splits",
		Description: "The user's splits with their days and exercises",
		MIMEType:    "application/json",
	}, s.handleSplitsResource)

	// splitfit://today - sessions logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "splitfit://today",
		Name:        "Today's Sessions",
		Description: "Workout sessions dated today with their sets",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.stats.ComputeProgressStats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return jsonResource("splitfit://summary", st)
}

func (s *Server) handleSplitsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	acct, err := s.identity.CurrentUser()
	if err != nil {
		return nil, err
	}

	splits, err := s.repo.ListSplits(acct.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}

	var full []*models.SplitWithDays
	for _, sp := range splits {
		f, err := s.repo.GetSplitWithDays(sp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load split %s: %w", sp.ID, err)
		}
		full = append(full, f)
	}
	return jsonResource("splitfit://splits", full)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	acct, err := s.identity.CurrentUser()
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListSessions(acct.UserID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	today := models.DateOf(time.Now())
	result := []map[string]any{}
	for _, sess := range sessions {
		if !sess.Date.Equal(today) {
			continue
		}
		sets, err := s.repo.ListSessionSets(sess.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sets: %w", err)
		}
		result = append(result, map[string]any{
			"session": sess,
			"sets":    sets,
		})
	}
	return jsonResource("splitfit://today", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(data)},
		},
	}, nil
}
