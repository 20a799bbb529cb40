// ABOUTME: MCP tool implementations for splitfit.
// ABOUTME: Exposes session logging, stats, and template instantiation to assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/splitfitapp/splitfit/internal/models"
)

func (s *Server) registerTools() {
	// list_splits
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_splits",
		Description: "List the user's workout splits",
	}, s.handleListSplits)

	// get_split
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_split",
		Description: "Get a split with its days and exercises",
	}, s.handleGetSplit)

	// apply_template
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "apply_template",
		Description: "Create a new split from a routine template with weekday assignments",
	}, s.handleApplyTemplate)

	// start_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_session",
		Description: "Start a workout session for a split day",
	}, s.handleStartSession)

	// finish_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_session",
		Description: "Mark a workout session as completed",
	}, s.handleFinishSession)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Record one set (reps and weight) for an exercise in a session",
	}, s.handleLogSet)

	// get_progress_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress_stats",
		Description: "Get workout count, streaks, total volume, and favorite exercise",
	}, s.handleProgressStats)

	// get_exercise_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Get max weight, max reps, and volume history for one exercise",
	}, s.handleExerciseProgress)
}

// Tool input/output types

type listSplitsInput struct{}

type getSplitInput struct {
	SplitID string `json:"split_id" jsonschema:"Split UUID"`
}

type dayAssignmentInput struct {
	DayOfWeek int    `json:"day_of_week" jsonschema:"Weekday number the routine runs on"`
	Routine   string `json:"routine" jsonschema:"Routine name from the template (unknown names become rest days)"`
}

type applyTemplateInput struct {
	Template    string               `json:"template" jsonschema:"Template name (Push/Pull/Legs, Upper/Lower, Full Body)"`
	SplitName   string               `json:"split_name" jsonschema:"Name for the new split"`
	Assignments []dayAssignmentInput `json:"assignments" jsonschema:"Weekday to routine assignments"`
}

type startSessionInput struct {
	SplitDayID string `json:"split_day_id" jsonschema:"Split day UUID"`
}

type finishSessionInput struct {
	SessionID string `json:"session_id" jsonschema:"Session UUID"`
}

type logSetInput struct {
	SessionID  string  `json:"session_id" jsonschema:"Session UUID"`
	ExerciseID string  `json:"exercise_id" jsonschema:"Exercise UUID"`
	Reps       int     `json:"reps" jsonschema:"Rep count"`
	Weight     float64 `json:"weight" jsonschema:"Weight in kg; 0 for bodyweight"`
}

type exerciseProgressInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise UUID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListSplits(ctx context.Context, req *mcp.CallToolRequest, input listSplitsInput) (*mcp.CallToolResult, any, error) {
	acct, err := s.identity.CurrentUser()
	if err != nil {
		return nil, nil, err
	}

	splits, err := s.repo.ListSplits(acct.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list splits: %w", err)
	}
	if len(splits) == 0 {
		return nil, map[string]any{"message": "No splits found."}, nil
	}
	return nil, splits, nil
}

func (s *Server) handleGetSplit(ctx context.Context, req *mcp.CallToolRequest, input getSplitInput) (*mcp.CallToolResult, any, error) {
	id, err := uuid.Parse(input.SplitID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid split id: %s", input.SplitID)
	}

	full, err := s.repo.GetSplitWithDays(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get split: %w", err)
	}
	return nil, full, nil
}

func (s *Server) handleApplyTemplate(ctx context.Context, req *mcp.CallToolRequest, input applyTemplateInput) (*mcp.CallToolResult, any, error) {
	assignments := make(map[int]string, len(input.Assignments))
	for _, a := range input.Assignments {
		assignments[a.DayOfWeek] = a.Routine
	}

	full, err := s.routines.Instantiate(input.Template, input.SplitName, assignments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply template: %w", err)
	}
	return nil, full, nil
}

func (s *Server) handleStartSession(ctx context.Context, req *mcp.CallToolRequest, input startSessionInput) (*mcp.CallToolResult, any, error) {
	acct, err := s.identity.CurrentUser()
	if err != nil {
		return nil, nil, err
	}
	dayID, err := uuid.Parse(input.SplitDayID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid split day id: %s", input.SplitDayID)
	}
	if _, err := s.repo.GetSplitDay(dayID); err != nil {
		return nil, nil, fmt.Errorf("split day not found: %s", input.SplitDayID)
	}

	sess := models.NewSession(acct.UserID, dayID)
	if err := s.repo.CreateSession(sess); err != nil {
		return nil, nil, fmt.Errorf("failed to start session: %w", err)
	}
	return nil, sess, nil
}

func (s *Server) handleFinishSession(ctx context.Context, req *mcp.CallToolRequest, input finishSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.SessionID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid session id: %s", input.SessionID)
	}
	if err := s.repo.CompleteSession(id, time.Now()); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to finish session: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Finished session %s", input.SessionID)}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, any, error) {
	sessionID, err := uuid.Parse(input.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid session id: %s", input.SessionID)
	}
	exerciseID, err := uuid.Parse(input.ExerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid exercise id: %s", input.ExerciseID)
	}

	num, err := s.repo.NextSetNumber(sessionID, exerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to number set: %w", err)
	}

	ws := models.NewWorkoutSet(sessionID, exerciseID, num, input.Reps, input.Weight)
	if err := s.repo.CreateWorkoutSet(ws); err != nil {
		return nil, nil, fmt.Errorf("failed to log set: %w", err)
	}
	return nil, ws, nil
}

func (s *Server) handleProgressStats(ctx context.Context, req *mcp.CallToolRequest, input listSplitsInput) (*mcp.CallToolResult, any, error) {
	st, err := s.stats.ComputeProgressStats()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return nil, st, nil
}

func (s *Server) handleExerciseProgress(ctx context.Context, req *mcp.CallToolRequest, input exerciseProgressInput) (*mcp.CallToolResult, any, error) {
	id, err := uuid.Parse(input.ExerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid exercise id: %s", input.ExerciseID)
	}

	progress, err := s.stats.ExerciseProgress(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute progress: %w", err)
	}
	if progress == nil {
		return nil, map[string]any{"message": "No sets recorded for this exercise."}, nil
	}
	return nil, progress, nil
}
