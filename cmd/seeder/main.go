//cmd/seeder/main.go
package main

import (
    "bytes"
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "os"
    "time"
)

// Seeds a running CRM server over its HTTP API with the demo dataset.
func main() {
    baseURL := os.Getenv("CRM_URL")
    if baseURL == "" {
        baseURL = "http://127.0.0.1:8080"
    }

    smithID := postForID(baseURL+"/customers", map[string]any{
        "name":  "John Smith",
        "email": "john.smith@example.com",
        "phone": "555-123-4567",
        "role":  "Client",
        "notes": "Key decision maker for enterprise project. Prefers email communication.",
    })

    doeID := postForID(baseURL+"/customers", map[string]any{
        "name":  "Jane Doe",
        "email": "jane.doe@example.com",
        "phone": "555-987-6543",
        "role":  "Prospect",
        "notes": "Met at tech conference. Interested in premium offering. Follow up quarterly.",
    })

    postForID(baseURL+"/communications", map[string]any{
        "customer_id": smithID,
        "type":        "phone",
        "notes":       "Discussed new project requirements",
        "tags":        []string{"project", "requirements"},
    })

    postForID(baseURL+"/communications", map[string]any{
        "customer_id": doeID,
        "type":        "email",
        "notes":       "Sent product information brochure",
        "tags":        []string{"marketing"},
    })

    now := time.Now()
    postForID(baseURL+"/tasks", map[string]any{
        "customer_id": smithID,
        "description": "Follow up on project proposal",
        "due_date":    now.AddDate(0, 0, 3).Format(time.RFC3339),
    })

    postForID(baseURL+"/tasks", map[string]any{
        "customer_id": doeID,
        "description": "Schedule product demo",
        "due_date":    now.AddDate(0, 0, 7).Format(time.RFC3339),
        "priority":    "high",
    })

    fmt.Println("Seeding completed successfully!")
}

func postForID(url string, payload map[string]any) string {
    body, err := json.Marshal(payload)
    if err != nil {
        log.Fatalf("failed to marshal payload for %s: %v", url, err)
    }

    resp, err := http.Post(url, "application/json", bytes.NewReader(body))
    if err != nil {
        log.Fatalf("failed to POST %s: %v", url, err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusCreated {
        log.Fatalf("POST %s returned %d", url, resp.StatusCode)
    }

    var created struct {
        ID string `json:"id"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
        log.Fatalf("failed to decode response from %s: %v", url, err)
    }

    fmt.Printf("Seeded: %s\n", url)
    return created.ID
}
