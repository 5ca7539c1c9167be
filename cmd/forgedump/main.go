// Command forgedump assembles a sample train-car prefab tree from flags and
// prints it, for eyeballing what the builders produce before wiring them
// into an authored scene.
package main

import (
	"fmt"
	"os"

	forgeutils "github.com/Kremink/ForgeUtils"
	"github.com/spf13/cobra"
)

var (
	modelName  string
	assetPkg   string
	wheelCount int
	channels   int
	mass       float64
	colorHex   string
	format     string
)

var rootCmd = &cobra.Command{
	Use:   "forgedump",
	Short: "Assemble a sample train-car prefab tree and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		car, err := buildCar()
		if err != nil {
			return err
		}
		switch format {
		case "tree":
			forgeutils.PrintPrefab(car)
		case "json":
			fmt.Println(forgeutils.EncodeJSON(car, 2))
		case "yaml":
			out, err := forgeutils.EncodeYAML(car)
			if err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			fmt.Print(out)
		default:
			return fmt.Errorf("unknown format %q (want tree, json, or yaml)", format)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "SteelCoasterCar", "Car model name")
	rootCmd.Flags().StringVarP(&assetPkg, "package", "p", "CoasterTrains", "Asset package to load")
	rootCmd.Flags().IntVarP(&wheelCount, "wheels", "w", 4, "Wheels per bogie")
	rootCmd.Flags().IntVarP(&channels, "channels", "c", 3, "Material customisation channels")
	rootCmd.Flags().Float64Var(&mass, "mass", 1000, "Car mass in kg")
	rootCmd.Flags().StringVar(&colorHex, "color", "", "Base color as 6-digit hex (optional)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "tree", "Output format: tree, json, or yaml")
}

// buildCar assembles a car with a front bogie, its wheel assembly, a guide
// wheel, an onride camera, a boarding platform, and a catch-car attach
// point. Strict builders are used so bad flag values fail up front.
func buildCar() (*forgeutils.Node, error) {
	loader := forgeutils.AssetPackageLoader{Package: assetPkg}

	comps, err := forgeutils.TrainCarComponentsStrict(modelName, loader, channels, mass)
	if err != nil {
		return nil, err
	}
	car := &forgeutils.Node{Components: comps}

	if colorHex != "" {
		color, err := forgeutils.HexColorToNormalizedColorStrict(colorHex)
		if err != nil {
			return nil, err
		}
		car.Properties = forgeutils.Properties{
			"BaseColor": {Default: color},
		}
	}

	assembly, err := forgeutils.WheelAssemblyStrict(modelName+"_Wheels", wheelCount)
	if err != nil {
		return nil, err
	}
	bogie := &forgeutils.Node{
		Components: forgeutils.BogieComponents(loader),
		Children: forgeutils.Children{
			"Wheels":     assembly,
			"GuideWheel": forgeutils.WheelChild("GuideWheelBone", modelName+"_GuideWheel", 0.35),
		},
	}

	car.Children = forgeutils.Children{
		"BogieFront": forgeutils.BoneAttachmentWithChildren("BogieFrontBone", forgeutils.Children{
			"Bogie": bogie,
		}),
		"OnrideCamera": forgeutils.SimpleCameraChild("OnrideCamera",
			forgeutils.Vec3{Y: 1.2, Z: -0.4}, forgeutils.Vec3{}),
		"Platform": forgeutils.SimpleSceneryPlatform(modelName+"_PlatformMesh", "Boarding"),
		"CatchCar": forgeutils.SimpleAttachPoint("CatchCarBone"),
	}
	return car, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
