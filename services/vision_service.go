package services

import (
    "encoding/json"
    "fmt"
    "log"
    "regexp"
    "strings"

    "github.com/itstoasti/KetoMate-sub001/utils"
)

const labelScanPrompt = `Read the nutrition label in this photo.
Respond with strict JSON only, no other text:
{"name": "product name", "servingSize": "serving size", "calories": 0, "carbs": 0, "protein": 0, "fat": 0}
Numbers are per serving. If you cannot read the label, respond with {"error": "reason"}.`

// VisionService sends nutrition-label photos to the image-understanding
// endpoint and parses the strict-JSON reply, with a regex fallback that
// recovers at least the calories figure from free text.
type VisionService struct {
    llm *LLMService
}

func NewVisionService(llm *LLMService) *VisionService {
    return &VisionService{llm: llm}
}

type labelScanResponse struct {
    Name        string  `json:"name"`
    ServingSize string  `json:"servingSize"`
    Calories    float64 `json:"calories"`
    Carbs       float64 `json:"carbs"`
    Protein     float64 `json:"protein"`
    Fat         float64 `json:"fat"`
    Error       string  `json:"error"`
}

// ScanLabel analyzes a base64-encoded JPEG (data-URI prefix stripped if
// present). The photo is archived to S3 first, best effort: an upload
// failure is logged, never blocks the analysis.
func (s *VisionService) ScanLabel(imageBase64 string) (*FoodAnalysis, error) {
    raw := StripDataURI(imageBase64)

    if _, err := utils.UploadBase64ImageToS3(imageBase64, "label-scans/scan"); err != nil {
        log.Printf("label photo archive failed: %v", err)
    }

    content := []map[string]any{
        {"type": "text", "text": labelScanPrompt},
        {
            "type": "image_url",
            "image_url": map[string]string{
                "url": "data:image/jpeg;base64," + raw,
            },
        },
    }

    text, err := s.llm.Complete([]ChatMessage{{Role: "user", Content: content}})
    if err != nil {
        return nil, err
    }
    return ParseLabelScan(text), nil
}

// ParseLabelScan turns the endpoint's reply into the three-way analysis
// outcome: strict JSON first, then the calories regex, then parse failure.
func ParseLabelScan(text string) *FoodAnalysis {
    var resp labelScanResponse
    if err := json.Unmarshal([]byte(ExtractJSON(text)), &resp); err == nil {
        if resp.Error != "" {
            return &FoodAnalysis{Outcome: AnalysisNotFound, Query: resp.Error}
        }
        food := ParsedFood{
            Name:         resp.Name,
            ServingSize:  resp.ServingSize,
            Calories:     resp.Calories,
            Carbs:        resp.Carbs,
            Protein:      resp.Protein,
            Fat:          resp.Fat,
            KetoFriendly: utils.IsKetoFriendly(resp.Carbs),
        }
        return &FoodAnalysis{Outcome: AnalysisSuccess, Food: &food}
    }

    if cal, ok := extractCalories(text); ok {
        // Carbs are unknown on this path, so no keto flag.
        food := ParsedFood{Name: "Scanned label", Calories: cal}
        return &FoodAnalysis{Outcome: AnalysisSuccess, Food: &food}
    }

    return &FoodAnalysis{Outcome: AnalysisFailed}
}

// StripDataURI removes a "data:image/...;base64," prefix if present.
func StripDataURI(s string) string {
    if strings.HasPrefix(s, "data:") {
        if idx := strings.Index(s, ","); idx >= 0 {
            return s[idx+1:]
        }
    }
    return s
}

var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON pulls the JSON block out of a reply that may wrap it in code
// fences or prose.
func ExtractJSON(text string) string {
    text = strings.TrimSpace(text)
    text = strings.TrimPrefix(text, "```json")
    text = strings.TrimPrefix(text, "```")
    text = strings.TrimSuffix(text, "```")
    if match := jsonBlockRe.FindString(text); match != "" {
        return match
    }
    return text
}

var caloriesRe = regexp.MustCompile(`(?i)calories?\D{0,10}?(\d+(?:\.\d+)?)`)

func extractCalories(text string) (float64, bool) {
    m := caloriesRe.FindStringSubmatch(text)
    if len(m) < 2 {
        return 0, false
    }
    var cal float64
    if _, err := fmt.Sscanf(m[1], "%f", &cal); err != nil {
        return 0, false
    }
    return cal, true
}
