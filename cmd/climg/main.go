package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/codegangsta/cli"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/climg/climg"
)

func main() {
	log.SetHandler(clihandler.Default)

	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "climg"
	app.Usage = "A command-line tool for rendering images as unicode braille symbols."
	app.UsageText = "1) climg [options] [file|url] [invert]\n" +
		/*      */ "   2) climg [options] < [file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 80,25 fits the image to 80 columns and 25 lines instead of the detected terminal size.",
		},
		cli.IntFlag{
			Name:  "threshold,t",
			Usage: "`THRESHOLD` pins the black/white cutoff to a value between 0 and 255 instead of computing one from the image.",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
		cli.BoolFlag{
			Name:  "verbose,V",
			Usage: "Enables verbose logging.",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.Bool("verbose") {
			log.SetLevel(log.DebugLevel)
		}

		var reader io.Reader

		// Try to parse the args, if there are any, as a file or url
		if input := c.Args().First(); input != "" {
			// Is it a file?
			if file, err := os.Open(input); err == nil {
				defer file.Close()
				reader = file
			} else {
				// Is it a url?
				resp, err := http.Get(input)
				if err != nil {
					exit(err)
				}
				defer resp.Body.Close()
				reader = resp.Body
			}
		} else {
			reader = os.Stdin
		}

		img, format, err := image.Decode(reader)
		if err != nil {
			exit(err)
		}
		log.Debugf("decoded %s image: %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

		img = adjustImage(c, img)

		var opts []climg.Option
		if c.Bool("invert") || invertArg(c.Args().Get(1)) {
			opts = append(opts, climg.WithInvertedColors())
		}
		if c.IsSet("fit") {
			columns, rows, err := parseFit(c.String("fit"))
			if err != nil {
				exit(err)
			}
			log.Debugf("fitting to %d columns, %d rows", columns, rows)
			opts = append(opts, climg.WithGeometry(columns, rows))
		}
		if t := c.Int("threshold"); t >= 0 {
			if t > 255 {
				exit(fmt.Errorf("threshold must be between 0 and 255, got %d", t))
			}
			log.Debugf("using fixed threshold %d", t)
			opts = append(opts, climg.WithThreshold(uint8(t)))
		}

		if err := climg.NewEncoder(os.Stdout, opts...).Encode(img); err != nil {
			exit(err)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		exit(err)
	}
}

// invertArg reports whether a bare trailing argument enables inversion. Only
// the literal string "invert" counts.
func invertArg(arg string) bool {
	return arg == "invert"
}

func parseFit(fit string) (columns, rows int, err error) {
	parts := strings.Split(fit, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fit option must be comma separated")
	}
	columns, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("fit columns: %w", err)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("fit lines: %w", err)
	}
	return columns, rows, nil
}

// adjustImage applies the optional tone adjustments before the image enters
// the braille pipeline.
func adjustImage(c *cli.Context, img image.Image) image.Image {
	if c.IsSet("gamma") {
		img = imaging.AdjustGamma(img, c.Float64("gamma"))
	}
	if c.IsSet("brightness") {
		img = imaging.AdjustBrightness(img, c.Float64("brightness"))
	}
	if c.IsSet("sharpen") {
		img = imaging.Sharpen(img, c.Float64("sharpen"))
	}
	if c.IsSet("contrast") {
		img = imaging.AdjustContrast(img, c.Float64("contrast"))
	}
	return img
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error processing image: %v\n", err)
	os.Exit(1)
}
