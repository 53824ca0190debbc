package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/tango/internal/dictionary/jisho"
)

type rawSearcher interface {
	SearchRaw(ctx context.Context, keyword string, page int) ([]byte, error)
}

// Reader looks up dictionary pages for the CLI, keeping every response on disk.
type Reader struct {
	client    rawSearcher
	fileCache *FileCache
}

func NewReader(cacheDirectory string, client *jisho.Client) *Reader {
	return &Reader{
		client:    client,
		fileCache: NewFileCache(cacheDirectory),
	}
}

func (r *Reader) Lookup(ctx context.Context, keyword string, page int) (jisho.Response, error) {
	var resp jisho.Response
	contents, err := r.fileCache.cache(cacheKey(keyword, page), func() ([]byte, error) {
		body, err := r.client.SearchRaw(ctx, keyword, page)
		if err != nil {
			return nil, fmt.Errorf("r.client.SearchRaw > %w", err)
		}
		return body, nil
	})
	if err != nil {
		return resp, fmt.Errorf("r.fileCache.cache > %w", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

func (r *Reader) Show(output io.Writer, response jisho.Response) {
	for i, item := range response.Data {
		forms := make([]string, 0, len(item.Japanese))
		for _, japanese := range item.Japanese {
			if japanese.Word == "" {
				forms = append(forms, japanese.Reading)
				continue
			}
			forms = append(forms, fmt.Sprintf("%s(%s)", japanese.Word, japanese.Reading))
		}
		glosses := make([]string, 0, len(item.Senses))
		for _, sense := range item.Senses {
			glosses = append(glosses, strings.Join(sense.EnglishDefinitions, ", "))
		}
		_, _ = fmt.Fprintf(output, "%d: %s\t%s\t%s\n", i+1,
			strings.Join(forms, " / "), strings.Join(item.JLPT, ","), strings.Join(glosses, "; "))
	}
}
