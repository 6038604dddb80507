package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"diamond-price-service/internal/adapters/primary/console"
	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/core/services"
)

func newPredictCmd(root *rootOptions) *cobra.Command {
	formSvc := services.NewFormService()
	var preview bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a diamond's price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, root, formSvc, preview)
		},
	}

	f := cmd.Flags()
	for _, w := range formSvc.Schema().Widgets {
		switch w.Kind {
		case domain.WidgetSlider:
			f.Float64(w.Key, w.Default.(float64), fmt.Sprintf("%s (%g to %g)", w.Label, w.Min, w.Max))
		case domain.WidgetSelect:
			f.String(w.Key, w.Default.(string), fmt.Sprintf("%s (one of: %s)", w.Label, strings.Join(w.Options, ", ")))
		}
	}
	f.BoolVar(&preview, "preview", false, "Print the input record as a table before predicting")

	return cmd
}

func runPredict(cmd *cobra.Command, root *rootOptions, formSvc *services.FormService, preview bool) error {
	r := console.NewRenderer(cmd.OutOrStdout(), !root.noColor)
	r.Title(formSvc.Schema())

	result, err := root.loadArtifact()
	if err != nil {
		return err
	}
	if failed, ok := result.(domain.Failed); ok {
		r.Status(failed)
		return errReported
	}

	values, err := formValues(cmd.Flags())
	if err != nil {
		return err
	}
	record, err := formSvc.Bind(values)
	if err != nil {
		r.Error(err.Error(), "")
		return errReported
	}

	if preview {
		r.Table(formSvc.Preview(record))
	}

	prediction, err := services.NewPredictionService(result).Predict(cmd.Context(), record)
	if err != nil {
		r.Failure(err)
		return errReported
	}

	r.Success(prediction.Message)
	return nil
}

// formValues collects only the flags the user set, leaving the rest to widget defaults.
func formValues(f *pflag.FlagSet) (domain.FormValues, error) {
	var values domain.FormValues

	floats := map[string]**float64{
		domain.ColumnCarat: &values.Carat,
		domain.ColumnDepth: &values.Depth,
		domain.ColumnTable: &values.Table,
		domain.ColumnX:     &values.X,
		domain.ColumnY:     &values.Y,
		domain.ColumnZ:     &values.Z,
	}
	for name, dst := range floats {
		if !f.Changed(name) {
			continue
		}
		v, ferr := f.GetFloat64(name)
		if ferr != nil {
			return domain.FormValues{}, ferr
		}
		*dst = &v
	}

	strs := map[string]**string{
		domain.ColumnCut:     &values.Cut,
		domain.ColumnColor:   &values.Color,
		domain.ColumnClarity: &values.Clarity,
	}
	for name, dst := range strs {
		if !f.Changed(name) {
			continue
		}
		v, serr := f.GetString(name)
		if serr != nil {
			return domain.FormValues{}, serr
		}
		*dst = &v
	}

	return values, nil
}
