package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/hupe1980/foodidx"
	"github.com/hupe1980/foodidx/dataset"
	"github.com/hupe1980/foodidx/model"
)

type app struct {
	cfg     config
	idx     *foodidx.Index
	loaded  dataset.LoadStats
	metrics *foodidx.BasicMetricsCollector
	out     io.Writer
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list":
		if err := want(cmd, args, 0); err != nil {
			return err
		}
		return a.records(a.idx.All())
	case "name":
		if err := want(cmd, args, 1); err != nil {
			return err
		}
		return a.records(a.idx.FilterByName(args[0]))
	case "filter":
		return a.records(a.idx.FilterByNutrients(args))
	case "id":
		if err := want(cmd, args, 1); err != nil {
			return err
		}
		return a.records(a.idx.LookupID(args[0]))
	case "stats":
		if err := want(cmd, args, 0); err != nil {
			return err
		}
		return a.stats()
	case "tree":
		if err := want(cmd, args, 1); err != nil {
			return err
		}
		return a.tree(args[0])
	case "export":
		if err := want(cmd, args, 1); err != nil {
			return err
		}
		return a.export(ctx, args[0])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func want(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, cmd, n, len(args))
	}
	return nil
}

type recordView struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Attributes map[string]float64 `json:"attributes"`
}

func (a *app) records(recs []*model.Record) error {
	if a.cfg.json {
		views := make([]recordView, len(recs))
		for i, r := range recs {
			views[i] = recordView{ID: r.ID, Name: r.Name, Attributes: r.Attributes}
		}
		return a.writeJSON(views)
	}

	attrs := a.idx.Attributes()
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "ID\tNAME")
	for _, attr := range attrs {
		fmt.Fprintf(tw, "\t%s", attr)
	}
	fmt.Fprintln(tw)

	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s", r.ID, r.Name)
		for _, attr := range attrs {
			v, ok := r.Value(attr)
			if !ok {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(v, 'f', -1, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

type statsView struct {
	Index   foodidx.Stats             `json:"index"`
	Load    dataset.LoadStats         `json:"load"`
	Metrics foodidx.BasicMetricsStats `json:"metrics"`
}

func (a *app) stats() error {
	v := statsView{
		Index:   a.idx.Stats(),
		Load:    a.loaded,
		Metrics: a.metrics.GetStats(),
	}
	if a.cfg.json {
		return a.writeJSON(v)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "records\t%d\n", v.Index.Records)
	fmt.Fprintf(tw, "distinct\t%d\n", v.Index.Distinct)
	fmt.Fprintf(tw, "branching factor\t%d\n", v.Index.BranchingFactor)
	fmt.Fprintf(tw, "blobs loaded\t%d\n", v.Load.Blobs)
	fmt.Fprintf(tw, "bytes read\t%d\n", v.Load.Bytes)
	fmt.Fprintf(tw, "lines skipped\t%d\n", v.Load.Skipped)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TREE\tENTRIES\tHEIGHT")
	for _, attr := range append([]string{foodidx.IDAttribute}, a.idx.Attributes()...) {
		ts := v.Index.Trees[attr]
		fmt.Fprintf(tw, "%s\t%d\t%d\n", attr, ts.Entries, ts.Height)
	}
	return tw.Flush()
}

func (a *app) tree(attr string) error {
	dump, err := a.idx.Dump(attr)
	if err != nil {
		return err
	}
	if a.cfg.json {
		return a.writeJSON(struct {
			Attribute string `json:"attribute"`
			Dump      string `json:"dump"`
		}{attr, dump})
	}
	_, err = io.WriteString(a.out, dump)
	return err
}

func (a *app) export(ctx context.Context, dest string) error {
	store, name, err := parseDestination(ctx, dest, a.cfg.minioSecure)
	if err != nil {
		return err
	}
	if err := dataset.ExportIndex(ctx, store, name, a.idx); err != nil {
		return err
	}
	if a.cfg.json {
		return a.writeJSON(struct {
			Dest    string `json:"dest"`
			Records int    `json:"records"`
		}{dest, a.idx.Len()})
	}
	_, err = fmt.Fprintf(a.out, "exported %d records to %s\n", a.idx.Len(), dest)
	return err
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
