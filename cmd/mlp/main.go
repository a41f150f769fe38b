// Package main provides the mlp command line tool: train, run and inspect sigmoid MLPs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/mlp/internal/serialization"
	"github.com/born-ml/mlp/model"
	"github.com/born-ml/mlp/nn"
	"github.com/born-ml/mlp/optim"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "train":
		runTrain(args)
	case "predict":
		runPredict(args)
	case "inspect":
		runInspect(args)
	case "version":
		fmt.Printf("mlp %s\n", version)
		fmt.Printf("CPU: %s (%d physical cores, %d logical)\n",
			cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("mlp - fully connected sigmoid networks trained with mini-batch SGD")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train      Train a network and save it")
	fmt.Println("  predict    Run a saved network on one input")
	fmt.Println("  inspect    Show the topology of a saved network")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Run 'mlp <command> -h' for command flags.")
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	sizesFlag := fs.String("sizes", "2,2,1", "Comma-separated layer widths, input first")
	dataPath := fs.String("data", "xor", "Training data: \"xor\" or a CSV file")
	testPath := fs.String("test", "", "Test data CSV for per-epoch evaluation (\"xor\" allowed)")
	epochs := fs.Int("epochs", 1000, "Number of training epochs")
	batchSize := fs.Int("batch", 1, "Mini-batch size")
	lr := fs.Float64("lr", 3.0, "Learning rate")
	seed := fs.Uint64("seed", 0, "Random seed (0 = seed from the clock)")
	shuffle := fs.String("shuffle", "unbiased", "Shuffle algorithm: unbiased or legacy")
	useParallel := fs.Bool("parallel", false, "Compute per-example gradients on all physical cores")
	formatFlag := fs.String("format", "raw", "Model file format: raw or checked")
	eval := fs.String("eval", "loss", "Evaluator for the test set: loss or accuracy")
	out := fs.String("out", "model.bin", "Output model file")
	_ = fs.Parse(args)

	sizes, err := parseInts(*sizesFlag)
	if err != nil {
		log.Fatalf("invalid -sizes: %v", err)
	}
	for _, s := range sizes {
		if s <= 0 {
			log.Fatalf("invalid -sizes: layer widths must be positive, got %v", sizes)
		}
	}
	mode, err := optim.ParseShuffleMode(*shuffle)
	if err != nil {
		log.Fatalf("invalid -shuffle: %v", err)
	}
	format, err := serialization.ParseFormat(*formatFlag)
	if err != nil {
		log.Fatalf("invalid -format: %v", err)
	}

	train, err := loadDataset(*dataPath, sizes)
	if err != nil {
		log.Fatalf("failed to load training data: %v", err)
	}
	var test []nn.Example
	if *testPath != "" {
		if test, err = loadDataset(*testPath, sizes); err != nil {
			log.Fatalf("failed to load test data: %v", err)
		}
	}

	var evaluator optim.Evaluator
	switch *eval {
	case "loss":
		evaluator = optim.LossEvaluator{}
	case "accuracy":
		evaluator = optim.AccuracyEvaluator{}
	default:
		log.Fatalf("invalid -eval %q (want loss or accuracy)", *eval)
	}

	opts := []model.Option{model.WithShuffle(mode), model.WithFormat(format)}
	if *seed != 0 {
		opts = append(opts, model.WithSeed(*seed))
	}
	if *useParallel {
		opts = append(opts, model.WithParallel(optim.DefaultParallelConfig()))
	}

	m, err := model.New(sizes, evaluator, opts...)
	if err != nil {
		log.Fatalf("failed to create model: %v", err)
	}

	fmt.Printf("Training %v on %d examples: %d epochs, batch %d, lr %g\n",
		sizes, len(train), *epochs, *batchSize, *lr)
	if err := m.Train(train, *epochs, *batchSize, *lr, test); err != nil {
		log.Fatalf("training failed: %v", err)
	}

	if *testPath == "" {
		mse, err := nn.MeanSquaredError(m.Network(), train)
		if err != nil {
			log.Fatalf("failed to evaluate: %v", err)
		}
		fmt.Printf("Training MSE after %d epochs: %.6f\n", m.CurrentEpoch(), mse)
	}

	if err := m.Save(*out); err != nil {
		log.Fatalf("failed to save model: %v", err)
	}
	fmt.Printf("Saved %s (%s format)\n", *out, format)
}

func runPredict(args []string) {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	path := fs.String("model", "model.bin", "Model file")
	inputFlag := fs.String("input", "", "Comma-separated input values")
	_ = fs.Parse(args)

	input, err := parseFloats(*inputFlag)
	if err != nil {
		log.Fatalf("invalid -input: %v", err)
	}

	m, err := model.Open(*path, nil)
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}

	output, err := m.Predict(input)
	if err != nil {
		log.Fatalf("prediction failed: %v", err)
	}
	fmt.Println(formatFloats(output))
}

func runInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	path := fs.String("model", "model.bin", "Model file")
	_ = fs.Parse(args)

	m, err := model.Open(*path, nil)
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}

	net := m.Network()
	fmt.Printf("Topology:   %v\n", net.Sizes())
	fmt.Printf("Layers:     %d weighted\n", net.LayerCount())
	fmt.Printf("Parameters: %d\n", net.NumParameters())
	for l := 0; l < net.LayerCount(); l++ {
		rows, cols := net.Weight(l).Dims()
		fmt.Printf("  layer %d: weight %dx%d, bias %d\n", l, rows, cols, net.Bias(l).Len())
	}
}
