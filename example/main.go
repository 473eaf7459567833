package main

import (
	"bufio"
	"log"
	"os"

	midigen "github.com/Shoggoth269/MIDIGenerator"
)

func main() {
	generator := midigen.New()

	filePtr, err := os.Create("random.mid")
	if err != nil {
		log.Fatalln(err)
	}
	defer filePtr.Close()

	writer := bufio.NewWriter(filePtr)
	err = midigen.Generate(generator, writer)
	if err != nil {
		log.Fatalln(err)
	}

	err = writer.Flush()
	if err != nil {
		log.Fatalln(err)
	}
}
