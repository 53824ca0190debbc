package archive

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

var (
	ErrMalformedRecord = errors.New("malformed archive record")
	ErrNotVocabulary   = errors.New("record holds no quiz entry")
)

const (
	wordClass  = "word"
	senseClass = "ncdata-sense-wrap"
)

// Extract returns the single entry a record yields.
// ErrMalformedRecord means the record could not be decoded; ErrNotVocabulary
// means it decoded but does not describe an answerable word.
func Extract(record Record) (vocabulary.Entry, error) {
	if !utf8.Valid(record.Key) || !utf8.Valid(record.Definition) {
		return vocabulary.Entry{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformedRecord)
	}
	key := norm.NFC.String(string(record.Key))
	definition := norm.NFC.Bytes(record.Definition)

	doc, err := html.Parse(bytes.NewReader(definition))
	if err != nil {
		return vocabulary.Entry{}, fmt.Errorf("%w: html.Parse > %v", ErrMalformedRecord, err)
	}

	wordNode := findElement(doc, func(n *html.Node) bool {
		return n.Data == "span" && classOf(n) == wordClass
	})
	if wordNode == nil {
		return vocabulary.Entry{}, fmt.Errorf("%w: no headword", ErrNotVocabulary)
	}
	logographic := strings.TrimSpace(nodeText(wordNode))
	if logographic == "⇒" || logographic == "→" {
		return vocabulary.Entry{}, fmt.Errorf("%w: cross reference", ErrNotVocabulary)
	}
	phonetic := strings.TrimSpace(key)

	meaning := senseMeaning(doc)
	if logographic == "" || phonetic == "" || meaning == "" {
		return vocabulary.Entry{}, fmt.Errorf("%w: missing field in %q", ErrNotVocabulary, phonetic)
	}
	if !distinctForms(logographic, phonetic) {
		return vocabulary.Entry{}, fmt.Errorf("%w: forms of %q are not distinct", ErrNotVocabulary, phonetic)
	}

	cleanLogographic, cleanPhonetic := vocabulary.CleanForms(logographic, phonetic)
	if !distinctForms(cleanLogographic, cleanPhonetic) {
		return vocabulary.Entry{}, fmt.Errorf("%w: annotated forms of %q are not distinct", ErrNotVocabulary, phonetic)
	}

	entry, err := vocabulary.NewEntry(cleanLogographic, cleanPhonetic, meaning)
	if err != nil {
		return vocabulary.Entry{}, fmt.Errorf("%w: %v", ErrNotVocabulary, err)
	}
	return entry, nil
}

func distinctForms(logographic, phonetic string) bool {
	return logographic != phonetic &&
		utf8.RuneCountInString(logographic) > 1 &&
		utf8.RuneCountInString(phonetic) > 1
}

// senseMeaning scans sense blocks in order and stops at the first one that has a
// Chinese line. Within a block the last Chinese line wins.
func senseMeaning(doc *html.Node) string {
	for _, block := range findElements(doc, func(n *html.Node) bool {
		return n.Data == "ul" && classOf(n) == senseClass
	}) {
		meaning := ""
		for _, span := range findElements(block, func(n *html.Node) bool {
			return n.Data == "span" && len(n.Attr) == 0
		}) {
			text := strings.TrimSpace(nodeText(span))
			if containsHan(text) {
				meaning = text
			}
		}
		if meaning != "" {
			return meaning
		}
	}
	return ""
}

func containsHan(s string) bool {
	for _, r := range s {
		if r >= '\u4e00' && r <= '\u9fff' {
			return true
		}
	}
	return false
}

func classOf(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return attr.Val
		}
	}
	return ""
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findElements returns matching elements in document order, without descending into matches.
func findElements(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			nodes = append(nodes, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return nodes
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
