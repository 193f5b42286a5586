package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var actions = []string{"create_transport", "create_transport_with_options", "unknown_action"}

func main() {
	baseURL := flag.String("url", "http://localhost:9000", "service base url")
	from := flag.Int64("from", 1, "first order id")
	to := flag.Int64("to", 100, "last order id")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			id := *from + rand.Int63n(*to-*from+1)
			wg.Go(func() { doRequest(client, *baseURL, id) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(client *http.Client, baseURL string, id int64) {
	if rand.Intn(10) != 0 {
		get(client, fmt.Sprintf("%s/orders/%d/transport", baseURL, id))
		return
	}

	action := actions[rand.Intn(len(actions))]
	body := []byte(`{}`)
	if action == "create_transport_with_options" {
		body = []byte(`{"delivery":{"floor":"2","elevator_available":"1"}}`)
	}
	post(client, fmt.Sprintf("%s/orders/%d/actions/%s", baseURL, id, action), body)
}

func get(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	fmt.Println("GET", url, "->", resp.Status)
}

func post(client *http.Client, url string, body []byte) {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	fmt.Println("POST", url, "->", resp.Status, string(bytes.TrimSpace(out)))
}
