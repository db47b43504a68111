package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-workflow/internal/store"
	"github.com/askiada/go-workflow/pkg/workflow/measure"
)

// SVGDrawer is a drawer that creates a SVG file with the workflow step chain.
type SVGDrawer struct {
	graph       graph.Graph[string, string]
	store       store.ChainStore[string, string]
	steps       map[string]struct{}
	svgFileName string
}

// NewSVGDrawer creates a new SVG drawer.
func NewSVGDrawer(svgFileName string) *SVGDrawer {
	chainStore := store.NewMemoryStore[string, string]()

	return &SVGDrawer{
		svgFileName: svgFileName,
		graph:       graph.NewWithStore(graph.StringHash, chainStore, graph.Directed()),
		store:       chainStore,
		steps:       make(map[string]struct{}),
	}
}

// AddStep adds a step to the workflow graph.
func (d *SVGDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.steps[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and child steps.
func (d *SVGDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates a SVG file with the workflow graph.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.svgFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.svgFileName)
	}

	return nil
}

// SetTotalTime sets the total run time on a step.
func (d *SVGDrawer) SetTotalTime(stepName string, totalTime time.Duration) error {
	_, properties, err := d.graph.VertexWithProperties(stepName)
	if err != nil {
		return errors.Wrap(err, "unable to get end vertex properties")
	}

	properties.Attributes["xlabel"] = totalTime.String()

	return nil
}

const maxRGB = 240

// AddMeasure decorates the graph with run measurements: each step vertex is
// labelled with its average duration and attempt counters, and coloured on a
// blue-to-red scale from cheapest to most expensive step.
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	allElapsed := make(map[time.Duration]string)
	sortedElapsed := []time.Duration{}

	for _, metric := range msr.AllMetrics() {
		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}

		if _, ok := allElapsed[avg]; ok {
			continue
		}

		allElapsed[avg] = ""

		sortedElapsed = append(sortedElapsed, avg)
	}

	if len(sortedElapsed) > 0 {
		sort.Slice(sortedElapsed, func(i, j int) bool {
			return sortedElapsed[i] > sortedElapsed[j]
		})

		maxValue := sortedElapsed[0]
		minValue := sortedElapsed[len(sortedElapsed)-1]

		for curr := range allElapsed {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := uint8(maxRGB * fraction)
			blue := uint8(maxRGB - maxRGB*fraction)

			heatColor, err := colors.RGB(red, 0, blue) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			allElapsed[curr] = heatColor.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, allElapsed)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *SVGDrawer) updateMetrics(msr measure.Measure, allElapsed map[time.Duration]string) error {
	for name, metric := range msr.AllMetrics() {
		if _, ok := d.steps[name]; !ok {
			continue
		}

		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		stepAvg := metric.AVGDuration()
		if stepAvg != 0 {
			properties.Attributes["xlabel"] = fmt.Sprintf("%s, attempts: %d, recorded: %d",
				stepAvg.String(), metric.Attempts(), metric.Recorded())

			d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
				p.Attributes["color"] = allElapsed[stepAvg]
			})
		}

		if stepAvg != 0 && metric.GetTotalDuration() > 0 {
			properties.Attributes["xlabel"] += ", end: " + metric.GetTotalDuration().String()
		}

		if metric.ShortCircuits() > 0 {
			d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
				p.Attributes["style"] = "dashed"
			})
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] function.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return tpl.Execute(wrt, desc)
}
