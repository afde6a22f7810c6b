package cimatrix

import (
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/remotecc/cimatrix/pkg/encoder"
	"github.com/remotecc/cimatrix/pkg/matrix"
	"github.com/remotecc/cimatrix/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	compilerType     string
	buildType        string
	enableCMake      []string
	enableGCC        []string
	enableAll        bool
	indent           int
	compactSequences bool
	verbose          bool
)

var rootCmd = &cobra.Command{
	Use:   "cimatrix",
	Short: "Cimatrix generates the Travis CI build matrix",
	Long: `Cimatrix pairs every enabled CMake version with every enabled GCC version
and prints the resulting .travis.yml to stdout. Disabled versions can be switched
back on with --enable-cmake, --enable-gcc or --all.`,
	Args: cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		log.SetOutput(io.Discard)
		if verbose {
			log.SetOutput(utils.NewColorLogger("cimatrix", cmd.ErrOrStderr(), color.FgYellow))
		}

		if err := run(cmd.OutOrStdout()); err != nil {
			log.SetOutput(cmd.ErrOrStderr())
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&compilerType, "compiler-type", matrix.CompilerType, "Compiler passed to the build script.")
	rootCmd.Flags().StringVar(&buildType, "build-type", matrix.BuildType, "CMake build type passed to the build script.")
	rootCmd.Flags().StringArrayVar(&enableCMake, "enable-cmake", make([]string, 0), "Enable a disabled CMake version. Can be repeated.")
	rootCmd.Flags().StringArrayVar(&enableGCC, "enable-gcc", make([]string, 0), "Enable a disabled GCC version. Can be repeated.")
	rootCmd.Flags().BoolVar(&enableAll, "all", false, "Enable every known version.")
	defaults := encoder.DefaultOptions()
	rootCmd.Flags().IntVar(&indent, "indent", defaults.Indent, "Spaces per indentation level, between 2 and 9.")
	rootCmd.Flags().BoolVar(&compactSequences, "compact-sequences", !defaults.IndentSequences, "Do not indent list items under their parent key.")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr.")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(versionsCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newGenerator() (*matrix.Generator, error) {
	g := matrix.NewGenerator()
	g.CompilerType = compilerType
	g.BuildType = buildType

	if enableAll {
		g.CMake = g.CMake.EnableAll()
		g.GCC = g.GCC.EnableAll()
	}
	if err := g.CMake.Enable(enableCMake...); err != nil {
		return nil, err
	}
	if err := g.GCC.Enable(enableGCC...); err != nil {
		return nil, err
	}
	return g, nil
}

func run(w io.Writer) error {
	g, err := newGenerator()
	if err != nil {
		return err
	}
	log.Printf("cmake versions: %v", g.CMake.Enabled())
	log.Printf("gcc versions: %v", g.GCC.Enabled())

	doc, err := g.Generate()
	if err != nil {
		return err
	}
	log.Printf("generated %d jobs", len(doc.Matrix.Include))

	return encoder.Encode(w, doc, encoder.Options{
		Indent:          indent,
		IndentSequences: !compactSequences,
	})
}
