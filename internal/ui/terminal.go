package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/patrickprogramme/quotescribe/internal/clipboard"
	"github.com/patrickprogramme/quotescribe/internal/request"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// GetRequestBlock lit le bloc de demande (URL + timestamps).
// 1) si le presse-papier contient déjà un bloc exploitable, on propose de l'utiliser;
// 2) sinon, saisie ligne à ligne terminée par une ligne vide.
func (t *terminalUI) GetRequestBlock(ctx context.Context) (string, error) {
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = normalize(clip)
		if req := request.Parse(clip); req.Validate() == nil {
			t.printPreview(clip)
			fmt.Print("(o) Utiliser ce bloc  (n) Saisir manuellement  ? [o/n] : ")
			resp, _ := t.reader.ReadString('\n')
			switch strings.TrimSpace(strings.ToLower(resp)) {
			case "o", "oui", "y", "yes":
				return clip, nil
			}
		}
	}

	// saisie manuelle
	fmt.Println("Collez l'URL de la vidéo puis vos timestamps (un par ligne, ex: 1:30 - le sujet).")
	fmt.Println("Terminez par une ligne vide :")
	var lines []string
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		input, err := t.reader.ReadString('\n')
		if err != nil && input == "" {
			break // EOF
		}
		line := strings.TrimRight(input, "\r\n")
		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 {
				break
			}
			continue // ignorer les lignes vides avant la première saisie
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// AskContextWindow demande les secondes de contexte après/avant chaque timestamp.
// Entrée vide => défauts. Entrée invalide => avertit et retombe sur le défaut.
func (t *terminalUI) AskContextWindow(ctx context.Context, defAfter, defBefore int) (int, int, error) {
	after := t.askSeconds(fmt.Sprintf("Secondes de contexte APRÈS chaque timestamp [%d] : ", defAfter), defAfter)
	before := t.askSeconds(fmt.Sprintf("Secondes de contexte AVANT chaque timestamp [%d] : ", defBefore), defBefore)
	return after, before, nil
}

func (t *terminalUI) askSeconds(prompt string, def int) int {
	fmt.Print(prompt)
	input, _ := t.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return def
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		fmt.Printf("Valeur invalide, utilisation de %d.\n", def)
		return def
	}
	return n
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Println("\n\nAppuyez sur Ctrl+C pour quitter.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done(): // Context annulé ailleurs
		return ctx.Err()
	case <-sigCh: // Reçu Ctrl+C (SIGINT ou SIGTERM)
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintWarn(ctx context.Context, s string) {
	fmt.Println("⚠️  " + s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}

func (t *terminalUI) printPreview(text string) {
	lines := strings.SplitN(text, "\n", 7)
	n := len(lines)
	if n > 6 {
		n = 6
	}
	fmt.Println("Bloc trouvé dans le presse-papier :")
	fmt.Println("────────────────────────")
	fmt.Println(strings.Join(lines[:n], "\n"))
	if len(strings.Split(text, "\n")) > 6 {
		fmt.Println("...")
	}
	fmt.Println("────────────────────────")
}

func normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
