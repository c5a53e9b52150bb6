package central

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

const searchPath = "/solrsearch/select"

// SearchArtifactRepository implements repositories.ArtifactRepository on the
// Maven Central search API. Answers are cached per coordinate for the
// lifetime of the repository.
type SearchArtifactRepository struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache[string, bool]
}

type searchResponse struct {
	Response struct {
		NumFound int `json:"numFound"`
	} `json:"response"`
}

// NewArtifactRepository creates a search client for the given settings.
func NewArtifactRepository(settings entities.RepositorySettings) repositories.ArtifactRepository {
	cache, err := lru.New[string, bool](settings.CacheSize)
	if err != nil {
		logger.Warnf("[central] Artifact cache disabled: %v", err)
		cache = nil
	}
	return &SearchArtifactRepository{
		baseURL: strings.TrimSuffix(settings.URL, "/"),
		client:  &http.Client{Timeout: settings.Timeout},
		cache:   cache,
	}
}

// Exists returns true when the index holds exactly one record for the override.
func (r *SearchArtifactRepository) Exists(ctx context.Context, override entities.VersionOverride) (bool, error) {
	key := override.String()
	if r.cache != nil {
		if exists, ok := r.cache.Get(key); ok {
			return exists, nil
		}
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf(`g:"%s" AND a:"%s" AND v:"%s"`, override.GroupID, override.ArtifactID, override.Version))
	query.Set("rows", "1")
	query.Set("wt", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", r.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload searchResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return false, fmt.Errorf("failed to parse search response: %w", decodeErr)
	}

	exists := payload.Response.NumFound == 1
	if r.cache != nil {
		r.cache.Add(key, exists)
	}
	return exists, nil
}
