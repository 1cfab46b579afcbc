// Package export renders store rows as CSV with the fixed column orders the
// download endpoints promise.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/ayatori/clientdesk/internal/models"
)

// Fixed download filenames.
const (
	ClientsFilename         = "clients.csv"
	TasksFilename           = "tasks.csv"
	OnboardingTasksFilename = "onboarding_tasks.csv"
	ContentIdeasFilename    = "content_ideas.csv"
	MetricsFilename         = "metrics.csv"
)

// WriteClients writes the client export: header plus one row per client.
func WriteClients(w io.Writer, clients []models.Client) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"ID", "Name", "Contact Number", "Business Category", "Social Media Handles", "Goals", "Specific Requests"}); err != nil {
		return err
	}
	for _, client := range clients {
		record := []string{
			strconv.FormatUint(client.ID, 10),
			client.Name,
			client.ContactNumber,
			client.BusinessCategory,
			client.SocialMediaHandles,
			client.Goals,
			client.SpecificRequests,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTasks writes the task export.
func WriteTasks(w io.Writer, tasks []models.Task) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"ID", "Manager ID", "Worker ID", "Client ID", "Task Description", "Deadline", "Status", "Completion Description", "Completion Link"}); err != nil {
		return err
	}
	for _, task := range tasks {
		record := []string{
			strconv.FormatUint(task.ID, 10),
			strconv.FormatUint(task.ManagerID, 10),
			strconv.FormatUint(task.WorkerID, 10),
			strconv.FormatUint(task.ClientID, 10),
			task.TaskDescription,
			task.Deadline.Format(time.RFC3339),
			string(task.Status),
			task.CompletionDescription,
			task.CompletionLink,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteOnboardingTasks writes the onboarding-task export for one client.
func WriteOnboardingTasks(w io.Writer, tasks []models.OnboardingTask) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"ID", "Task Name", "Responsible", "Deadline"}); err != nil {
		return err
	}
	for _, task := range tasks {
		record := []string{
			strconv.FormatUint(task.ID, 10),
			task.TaskName,
			task.Responsible,
			task.Deadline,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteContentIdeas writes the content-idea export for one client.
func WriteContentIdeas(w io.Writer, ideas []models.ContentIdea) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"ID", "Idea Source", "Description", "Link", "Sound", "Status"}); err != nil {
		return err
	}
	for _, idea := range ideas {
		record := []string{
			strconv.FormatUint(idea.ID, 10),
			idea.IdeaSource,
			idea.Description,
			idea.Link,
			idea.Sound,
			idea.Status,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteMetrics writes the metric export for one client.
func WriteMetrics(w io.Writer, metrics []models.Metric) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"ID", "Platform", "Post Date", "Views", "Likes", "Comments", "Shares"}); err != nil {
		return err
	}
	for _, metric := range metrics {
		record := []string{
			strconv.FormatUint(metric.ID, 10),
			metric.Platform,
			metric.PostDate,
			strconv.Itoa(metric.Views),
			strconv.Itoa(metric.Likes),
			strconv.Itoa(metric.Comments),
			strconv.Itoa(metric.Shares),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
