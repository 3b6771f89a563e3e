package db

import (
	"context"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/charmbracelet/log"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
)

const Scheme = "dynamodb://"

type Config struct {
	Table    string
	Endpoint string
	Region   string
}

type Item = map[string]*dynamodb.AttributeValue

// GetLibrary scans a chord table. Items carry Name (S), an optional Order (N)
// and either Pattern (S, e.g. "x-3-2-0-1-0") or Formula (S, e.g. "0-4-7").
func GetLibrary(ctx context.Context, cfg Config) (*model.Library, error) {
	if cfg.Table == "" {
		return nil, errors.New("no DynamoDB table given")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}

	client := dynamodb.New(sess)
	var items []Item
	input := &dynamodb.ScanInput{TableName: aws.String(cfg.Table)}
	err = client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		items = append(items, page.Items...)
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error scanning DynamoDB table %v", cfg.Table)
	}

	log.Debug("scanned chord table", "table", cfg.Table, "items", len(items))
	return ItemsToLibrary(items)
}

type orderedEntry struct {
	order int
	entry model.ChordEntry
}

// ItemsToLibrary converts scanned items, sorted by Order. A table must hold
// only one kind of entry.
func ItemsToLibrary(items []Item) (*model.Library, error) {
	var kind model.LibraryKind
	var entries []orderedEntry

	for i, item := range items {
		var e orderedEntry
		e.order = i
		if v := item["Order"]; v != nil && v.N != nil {
			n, err := strconv.Atoi(*v.N)
			if err != nil {
				return nil, errors.Wrapf(err, "bad Order on item %v", i)
			}
			e.order = n
		}
		if v := item["Name"]; v != nil && v.S != nil {
			e.entry.Name = *v.S
		}

		var itemKind model.LibraryKind
		switch {
		case item["Pattern"] != nil && item["Pattern"].S != nil:
			itemKind = model.KindPositions
			pattern, err := chord.ParsePattern(*item["Pattern"].S)
			if err != nil {
				return nil, errors.Wrapf(err, "bad Pattern on %q", e.entry.Name)
			}
			e.entry.Positions = pattern
		case item["Formula"] != nil && item["Formula"].S != nil:
			itemKind = model.KindFormula
			formula, err := chord.ParseFormula(*item["Formula"].S)
			if err != nil {
				return nil, errors.Wrapf(err, "bad Formula on %q", e.entry.Name)
			}
			e.entry.Formula = formula
		default:
			return nil, errors.Errorf("item %q has neither Pattern nor Formula", e.entry.Name)
		}

		if kind == "" {
			kind = itemKind
		} else if kind != itemKind {
			return nil, errors.New("chord table mixes patterns and formulas")
		}
		entries = append(entries, e)
	}

	if kind == "" {
		kind = model.KindPositions
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})
	lib := &model.Library{Kind: kind, Chords: make([]model.ChordEntry, len(entries))}
	for i, e := range entries {
		lib.Chords[i] = e.entry
	}
	return lib, nil
}
