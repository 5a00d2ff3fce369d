package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/proffy/internal/favorites"
	"github.com/akyairhashvil/proffy/internal/tui"
)

func newFavoritesCmd(a *app) *cobra.Command {
	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage saved favorite tutors",
		Long:  `List, remove or clear the tutors saved in the local favorites store.`,
	}

	favoritesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite tutors",
		Args:  cobra.NoArgs,
		RunE:  a.runFavoritesList,
	})
	favoritesCmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a tutor from the favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runFavoritesRemove,
	})
	favoritesCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE:  a.runFavoritesClear,
	})
	return favoritesCmd
}

func (a *app) runFavoritesList(cmd *cobra.Command, args []string) error {
	list, err := favorites.List(cmd.Context(), a.db)
	if err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No favorites saved yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUBJECT\tCOST")
	for _, t := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Subject, tui.FormatCost(t.Cost))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nTotal: %d favorites\n", len(list))
	return nil
}

func (a *app) runFavoritesRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tutor id %q", args[0])
	}
	removed, err := favorites.Remove(cmd.Context(), a.db, id)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Tutor %d is not a favorite.\n", id)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed tutor %d from favorites.\n", id)
	return nil
}

func (a *app) runFavoritesClear(cmd *cobra.Command, args []string) error {
	if err := favorites.Clear(cmd.Context(), a.db); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared.")
	return nil
}
