package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

var log = logrus.WithField("module", "dataset")

// Load resolves a dataset locator: an existing file (JSON or YAML), a Mongo
// {db}.{coll} backed by mongoURI, or the embedded fallback when the locator
// is empty.
func Load(ctx context.Context, locator, mongoURI string) (*Dataset, error) {
	p, err := NewPath(locator)
	if err != nil {
		return nil, err
	}
	if p == nil {
		log.Info("no dataset given, using embedded fallback network")
		return Default(), nil
	}
	if p.File != "" {
		return LoadFile(p.File)
	}
	if mongoURI == "" {
		return nil, fmt.Errorf("dataset %s requires -mongo_uri", p)
	}
	return LoadFromMongo(ctx, mongoURI, p)
}

// LoadFile reads a dataset document from disk. Files ending in .yml/.yaml
// are decoded as YAML, anything else as JSON.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dataset
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	log.Infof("dataset loaded from %s: %d stations, %d links", path, len(d.Stations), len(d.Links))
	return &d, nil
}

// mongoDocument is the collection layout: a single document carrying the
// serialized dataset bytes.
type mongoDocument struct {
	Data []byte `bson:"data"`
}

// LoadFromMongo downloads the dataset document from the given collection.
func LoadFromMongo(ctx context.Context, uri string, p *Path) (*Dataset, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", p, err)
	}
	defer client.Disconnect(ctx)
	var doc mongoDocument
	if err := client.Database(p.DB).Collection(p.Coll).FindOne(ctx, bson.D{}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("download dataset from %s: %w", p, err)
	}
	var d Dataset
	if err := json.Unmarshal(doc.Data, &d); err != nil {
		return nil, fmt.Errorf("parse dataset from %s: %w", p, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validate dataset from %s: %w", p, err)
	}
	log.Infof("dataset loaded from %s: %d stations, %d links", p, len(d.Stations), len(d.Links))
	return &d, nil
}
