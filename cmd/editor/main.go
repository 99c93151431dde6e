// The editor is a terminal front end over the article API: log in,
// list, read, write, delete articles and upload images for embedding.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"redakce-cms/client"
)

func main() {
	baseURL := os.Getenv("API_BASE")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}

	api := client.New(baseURL)
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 1024*1024), 1024*1024)

	fmt.Println("Redakce editor —", baseURL)
	fmt.Print("Uživatel: ")
	username := readLine(in)
	fmt.Print("Heslo: ")
	password := readLine(in)

	resp, err := api.Login(username, password)
	if err != nil {
		toast(err)
		os.Exit(1)
	}
	fmt.Printf("Přihlášen jako %s (%s)\n", resp.Username, resp.Role)

	for {
		fmt.Print("> ")
		line := readLine(in)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			items, err := api.ListArticles()
			if err != nil {
				toast(err)
				continue
			}
			for _, a := range items {
				fmt.Printf("%4d  %s  (%s)\n", a.ID, a.Title, a.CreatedAt.Format("2006-01-02 15:04"))
			}
		case "show":
			id, ok := argID(fields)
			if !ok {
				continue
			}
			a, err := api.GetArticle(id)
			if err != nil {
				toast(err)
				continue
			}
			fmt.Printf("# %s\n\n%s\n\n%s\n", a.Title, a.Perex, a.Content)
		case "new":
			title, perex, content := readArticle(in)
			id, err := api.CreateArticle(title, perex, content)
			if err != nil {
				toast(err)
				continue
			}
			fmt.Println("Uloženo, id:", id)
		case "edit":
			id, ok := argID(fields)
			if !ok {
				continue
			}
			title, perex, content := readArticle(in)
			if err := api.UpdateArticle(id, title, perex, content); err != nil {
				toast(err)
				continue
			}
			fmt.Println("Uloženo.")
		case "delete":
			id, ok := argID(fields)
			if !ok {
				continue
			}
			if err := api.DeleteArticle(id); err != nil {
				toast(err)
				continue
			}
			fmt.Println("Smazáno.")
		case "upload":
			if len(fields) < 2 {
				fmt.Println("upload <cesta-k-souboru>")
				continue
			}
			url, err := api.UploadImage(fields[1])
			if err != nil {
				toast(err)
				continue
			}
			fmt.Printf("Vloženo: <img src=\"%s\">\n", url)
		case "quit", "exit":
			return
		default:
			fmt.Println("Příkazy: list, show <id>, new, edit <id>, delete <id>, upload <soubor>, quit")
		}
	}
}

func readLine(in *bufio.Scanner) string {
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

// readArticle collects title, perex and content; content ends with a
// single "." line.
func readArticle(in *bufio.Scanner) (title, perex, content string) {
	fmt.Print("Titulek: ")
	title = readLine(in)
	fmt.Print("Perex: ")
	perex = readLine(in)
	fmt.Println("Obsah (ukonči řádkem s tečkou):")
	var lines []string
	for {
		line := readLine(in)
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	content = strings.Join(lines, "\n")
	return
}

func argID(fields []string) (uint, bool) {
	if len(fields) < 2 {
		fmt.Println("Chybí id.")
		return 0, false
	}
	id, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		fmt.Println("Neplatné id.")
		return 0, false
	}
	return uint(id), true
}

func toast(err error) {
	fmt.Println("⚠", err)
}
