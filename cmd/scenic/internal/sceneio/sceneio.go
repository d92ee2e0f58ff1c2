// Package sceneio loads declarative scene documents from YAML.
//
// A document carries a format version, a scene tree, and an optional
// standalone camera:
//
//	version: v1
//	scene:
//	  type: scene
//	  children:
//	    - type: mesh
//	      key: hero
//	      props: {position: [0, 1, 0]}
//	      children:
//	        - {type: boxGeometry, args: [1, 2, 1]}
//	        - {type: meshStandardMaterial, props: {color: "#336699"}}
//	camera:
//	  type: perspectiveCamera
//	  props: {position: [0, 2, 5]}
package sceneio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-scenic/scenic/pkg/core"
)

// SupportedMajor is the scene document format major version this build reads.
const SupportedMajor = "v1"

// Document is the top-level shape of a scene YAML file.
type Document struct {
	Version string   `yaml:"version,omitempty"`
	Scene   *NodeDoc `yaml:"scene"`
	Camera  *NodeDoc `yaml:"camera,omitempty"`
}

// NodeDoc is one declarative node in a document.
type NodeDoc struct {
	Type     string         `yaml:"type"`
	Key      string         `yaml:"key,omitempty"`
	Args     []any          `yaml:"args,omitempty"`
	Attach   string         `yaml:"attach,omitempty"`
	Props    map[string]any `yaml:"props,omitempty"`
	Children []*NodeDoc     `yaml:"children,omitempty"`
}

// Load reads and parses a scene document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene document and validates its format version.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene document: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if doc.Scene == nil {
		return nil, errors.New("scene document has no scene")
	}
	if err := validateNode(doc.Scene); err != nil {
		return nil, err
	}
	if doc.Camera != nil {
		if err := validateNode(doc.Camera); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

// checkVersion gates on the document's major version. A missing version
// reads as the current major.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid scene document version %q", version)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("unsupported scene document version %q (supported: %s)",
			version, SupportedMajor)
	}
	return nil
}

func validateNode(doc *NodeDoc) error {
	if doc.Type == "" {
		return errors.New("scene document node without a type")
	}
	for _, child := range doc.Children {
		if err := validateNode(child); err != nil {
			return err
		}
	}
	return nil
}

// SceneNode converts the document's scene tree to declarative nodes.
func (d *Document) SceneNode() *core.Node {
	return toNode(d.Scene)
}

// CameraNode converts the document's camera, or nil when absent.
func (d *Document) CameraNode() *core.Node {
	if d.Camera == nil {
		return nil
	}
	return toNode(d.Camera)
}

func toNode(doc *NodeDoc) *core.Node {
	node := core.El(doc.Type, core.P(doc.Props))
	if doc.Key != "" {
		node = node.WithKey(doc.Key)
	}
	if len(doc.Args) > 0 {
		node = node.WithArgs(doc.Args...)
	}
	if doc.Attach != "" {
		node = node.WithAttach(doc.Attach)
	}
	for _, child := range doc.Children {
		node.Children = append(node.Children, toNode(child))
	}
	return node
}
