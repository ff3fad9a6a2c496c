package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gaunghar/admin-console/modules/tole/infrastructure/persistence"
	"github.com/gaunghar/admin-console/modules/tole/services"
)

type refNode struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Children []refNode `yaml:"children,omitempty"`
}

type refsOutput struct {
	Provinces []refNode `yaml:"provinces"`
}

func newRefsCmd(opts *globalOptions) *cobra.Command {
	var (
		province              string
		includeMunicipalities bool
		parallel              int
	)

	cmd := &cobra.Command{
		Use:   "refs",
		Short: "Print the province, district and municipality tree as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := opts.login(cmd.Context())
			if err != nil {
				return err
			}
			svc := services.NewLocationService(persistence.NewLocationRepository(client))
			tree, err := buildRefTree(ctx, svc, province, includeMunicipalities, parallel)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(refsOutput{Provinces: tree})
		},
	}

	cmd.Flags().StringVar(&province, "province", "", "Only this province ID")
	cmd.Flags().BoolVar(&includeMunicipalities, "municipalities", true, "Include municipalities under each district")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Concurrent lookups")
	return cmd
}

// buildRefTree walks the cascade top down. Provinces are looked up
// concurrently; each province fills its own slot.
func buildRefTree(ctx context.Context, svc *services.LocationService, onlyProvince string, withMunicipalities bool, parallel int) ([]refNode, error) {
	provinces, err := svc.Provinces(ctx)
	if err != nil {
		return nil, err
	}
	nodes := make([]refNode, 0, len(provinces))
	for _, p := range provinces {
		if onlyProvince != "" && p.ID != onlyProvince {
			continue
		}
		nodes = append(nodes, refNode{ID: p.ID, Name: p.Name})
	}

	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range nodes {
		node := &nodes[i]
		g.Go(func() error {
			districts, err := svc.Districts(gctx, node.ID)
			if err != nil {
				return err
			}
			for _, d := range districts {
				child := refNode{ID: d.ID, Name: d.Name}
				if withMunicipalities {
					municipalities, err := svc.Municipalities(gctx, node.ID, d.ID)
					if err != nil {
						return err
					}
					for _, m := range municipalities {
						child.Children = append(child.Children, refNode{ID: m.ID, Name: m.Name})
					}
				}
				node.Children = append(node.Children, child)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}
