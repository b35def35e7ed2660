// internal/service/report_service.go
package service

import (
    "fmt"
    "time"

    appErrors "github.com/unclebandit/crmdesk-backend/internal/errors"
    "github.com/unclebandit/crmdesk-backend/internal/model"
)

// Reporting periods for the communication frequency report.
const (
    PeriodDaily   = "daily"
    PeriodWeekly  = "weekly"
    PeriodMonthly = "monthly"
)

// FrequencyBucket is one time slot of the frequency report, with a count
// per communication type.
type FrequencyBucket struct {
    Label  string         `json:"label"`
    Counts map[string]int `json:"counts"`
}

// CommunicationStats counts the whole communication log.
func (s *CRMService) CommunicationStats() (map[string]int, error) {
    comms, err := s.CommRepo.ListAll()
    if err != nil {
        return nil, err
    }
    return map[string]int{"totalCommunications": len(comms)}, nil
}

// TaskCompletionStats counts tasks and how many are done.
func (s *CRMService) TaskCompletionStats() (map[string]int, error) {
    tasks, err := s.TaskRepo.ListAll()
    if err != nil {
        return nil, err
    }

    stats := map[string]int{
        "totalTasks":     len(tasks),
        "completedTasks": 0,
    }
    for _, t := range tasks {
        if t.Completed {
            stats["completedTasks"]++
        }
    }
    return stats, nil
}

// CommunicationFrequency buckets the log by time slot: daily covers the
// last 7 days, weekly the last 4 weeks, monthly the last 6 months. Buckets
// come back oldest first with zeroed counts for every type.
func (s *CRMService) CommunicationFrequency(period string) ([]FrequencyBucket, error) {
    comms, err := s.CommRepo.ListAll()
    if err != nil {
        return nil, err
    }

    now := s.now()

    switch period {
    case PeriodDaily:
        return bucketByLabel(comms, dailyLabels(now), now.AddDate(0, 0, -7), func(ts time.Time) string {
            return ts.Format("01/02")
        }), nil
    case PeriodWeekly:
        return bucketWeekly(comms, now), nil
    case PeriodMonthly:
        return bucketMonthly(comms, now), nil
    }
    return nil, appErrors.NewValidation("invalid period: %q (want daily, weekly or monthly)", period)
}

func newBuckets(labels []string) []FrequencyBucket {
    buckets := make([]FrequencyBucket, len(labels))
    for i, label := range labels {
        buckets[i] = FrequencyBucket{
            Label: label,
            Counts: map[string]int{
                model.CommTypePhone:   0,
                model.CommTypeEmail:   0,
                model.CommTypeMeeting: 0,
            },
        }
    }
    return buckets
}

func dailyLabels(now time.Time) []string {
    labels := make([]string, 0, 7)
    for i := 6; i >= 0; i-- {
        labels = append(labels, now.AddDate(0, 0, -i).Format("01/02"))
    }
    return labels
}

// bucketMonthly anchors month arithmetic at the first of the month:
// stepping back from a month-end date would otherwise normalize through
// short months and produce duplicate and missing labels.
func bucketMonthly(comms []model.Communication, now time.Time) []FrequencyBucket {
    month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

    labels := make([]string, 0, 6)
    for i := 5; i >= 0; i-- {
        labels = append(labels, month.AddDate(0, -i, 0).Format("Jan 2006"))
    }

    // The window opens at the start of the oldest bucket.
    cutoff := month.AddDate(0, -5, 0)
    return bucketByLabel(comms, labels, cutoff, func(ts time.Time) string {
        return ts.Format("Jan 2006")
    })
}

// bucketByLabel assigns each communication at or after cutoff to the bucket
// whose label matches its own timestamp's label.
func bucketByLabel(comms []model.Communication, labels []string, cutoff time.Time, labelOf func(time.Time) string) []FrequencyBucket {
    buckets := newBuckets(labels)
    index := make(map[string]int, len(labels))
    for i, label := range labels {
        index[label] = i
    }

    for _, c := range comms {
        if c.Timestamp.Before(cutoff) {
            continue
        }
        if i, ok := index[labelOf(c.Timestamp)]; ok {
            if _, ok := buckets[i].Counts[c.Type]; ok {
                buckets[i].Counts[c.Type]++
            }
        }
    }
    return buckets
}

// bucketWeekly slots the last four weeks: week 1 is the oldest window,
// week 4 ends now. Labels carry each window's start date.
func bucketWeekly(comms []model.Communication, now time.Time) []FrequencyBucket {
    const week = 7 * 24 * time.Hour

    labels := make([]string, 0, 4)
    for k := 1; k <= 4; k++ {
        start := now.Add(-time.Duration(5-k) * week)
        labels = append(labels, fmt.Sprintf("Week %d (%s)", k, start.Format("01/02")))
    }
    buckets := newBuckets(labels)

    for _, c := range comms {
        age := now.Sub(c.Timestamp)
        if age < 0 || age >= 4*week {
            continue
        }
        // age < week -> week 4, age < 2*week -> week 3, ...
        slot := 3 - int(age/week)
        if _, ok := buckets[slot].Counts[c.Type]; ok {
            buckets[slot].Counts[c.Type]++
        }
    }
    return buckets
}
