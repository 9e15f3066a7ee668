package webreg

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"

	"ecf-server/api"
	"ecf-server/models"
)

// WebRegApiClient embeds the common HTTPClient
type WebRegApiClient struct {
	*api.HTTPClient
	cookieHeader string
}

// NewWebRegApiClient creates a new instance of WebRegApiClient
func NewWebRegApiClient(httpClient *api.HTTPClient) *WebRegApiClient {
	return &WebRegApiClient{
		HTTPClient: httpClient,
	}
}

// SetCookiesFromFile loads a "key=value; key=value" cookie string from disk.
// The catalog requires an authenticated session cookie.
func (c *WebRegApiClient) SetCookiesFromFile(filePath string) error {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read cookies file %q: %w", filePath, err)
	}
	c.cookieHeader = strings.TrimSpace(string(data))
	return nil
}

// FetchSections pages through the catalog listing for one program code and
// parses every section row, stopping at the first empty page.
func (c *WebRegApiClient) FetchSections(program string) ([]models.CourseSection, error) {
	var sections []models.CourseSection

	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("/Courses?Program=%s&Page=%d", program, page)
		headers := map[string]string{
			"User-Agent": "Mozilla/5.0 (Linux; Android 6.0; Nexus 5 Build/MRA58N) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Mobile Safari/537.36",
			"Referer":    c.BaseURL + "/Departments",
		}
		if c.cookieHeader != "" {
			headers["Cookie"] = c.cookieHeader
		}

		body, err := c.RequestRaw("GET", endpoint, headers, nil)
		if err != nil {
			// The empty-page check below ends paging; a transport error
			// mid-pagination would silently truncate the feed.
			return nil, fmt.Errorf("failed to fetch catalog page %d for %s: %w", page, program, err)
		}

		parsed, err := ParseCoursePage(string(body))
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog page for %s: %w", program, err)
		}
		if len(parsed) == 0 {
			break
		}
		log.Printf("[WebRegApiClient] Parsed %d sections from %s page %d", len(parsed), program, page)
		sections = append(sections, parsed...)
	}

	return sections, nil
}
