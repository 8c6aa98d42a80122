package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"acodelab/internal/api"
	"acodelab/internal/auth"
	"acodelab/internal/feed"
	"acodelab/internal/forms"
	"acodelab/internal/platform/config"
	"acodelab/internal/session"
)

type app struct {
	cfg        config.Client
	store      session.Store
	services   *api.Services
	manager    *auth.Manager
	controller *feed.Controller
}

func (a *app) usage() {
	fmt.Fprintln(os.Stderr, `uso: acodelab <comando> [opções]

comandos:
  login       -email -password      autentica e guarda a sessão
  register    -username -email ...  cria uma conta
  logout                            descarta a sessão local
  whoami                            mostra o usuário autenticado
  feed                              lista posts e portfolios em destaque
  post        -content [-tags]      publica um post
  like        <post-id>             curte um post
  comment     <post-id> <texto>     comenta em um post
  vote        <portfolio-id>        vota em um portfolio
  questions   [-search]             lista perguntas
  ask         -title -content       publica uma pergunta
  store                             lista itens da loja PCon
  jobs        [-search]             lista vagas
  articles    [-search]             lista artigos
  stats                             estatísticas (admin)`)
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	// Commands that act on an existing session verify it first, so a stale
	// token is cleared before any domain call is issued.
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.manager.Logout()
		fmt.Println("Sessão encerrada.")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "feed":
		return a.feed(ctx)
	case "post":
		return a.post(ctx, args)
	case "like":
		return a.like(ctx, args)
	case "comment":
		return a.comment(ctx, args)
	case "vote":
		return a.vote(ctx, args)
	case "questions":
		return a.questions(ctx, args)
	case "ask":
		return a.ask(ctx, args)
	case "store":
		return a.storeItems(ctx)
	case "jobs":
		return a.jobs(ctx, args)
	case "articles":
		return a.articles(ctx, args)
	case "stats":
		return a.stats(ctx)
	default:
		a.usage()
		return fmt.Errorf("comando desconhecido: %s", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email da conta")
	password := fs.String("password", "", "senha")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login exige -email e -password")
	}

	result := a.manager.Login(ctx, api.Credentials{Email: *email, Password: *password})
	if !result.Success {
		return errors.New(result.Error)
	}

	user, _ := a.manager.User()
	fmt.Printf("Bem-vindo, %s (%s)\n", user.Username, user.Rank)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "nome de usuário")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "senha")
	confirm := fs.String("confirm", "", "confirmação da senha")
	isCompany := fs.Bool("company", false, "conta de empresa")
	companyName := fs.String("company-name", "", "nome da empresa")
	companyDesc := fs.String("company-description", "", "descrição da empresa")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := forms.RegistrationInput{
		Username:           *username,
		Email:              *email,
		Password:           *password,
		ConfirmPassword:    *confirm,
		IsCompany:          *isCompany,
		CompanyName:        *companyName,
		CompanyDescription: *companyDesc,
	}
	if fieldErrors := forms.ValidateRegistration(input); len(fieldErrors) > 0 {
		var lines []string
		for field, message := range fieldErrors {
			lines = append(lines, fmt.Sprintf("  %s: %s", field, message))
		}
		return fmt.Errorf("formulário inválido:\n%s", strings.Join(lines, "\n"))
	}

	if score, label := forms.PasswordStrength(*password); score < 4 {
		fmt.Fprintf(os.Stderr, "aviso: senha %s\n", label)
	}

	result := a.manager.Register(ctx, api.RegisterRequest{
		Username:           *username,
		Email:              *email,
		Password:           *password,
		IsCompany:          *isCompany,
		CompanyName:        *companyName,
		CompanyDescription: *companyDesc,
	})
	if !result.Success {
		return errors.New(result.Error)
	}

	fmt.Println("Conta criada.")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	if a.manager.VerifyOnLoad(ctx) != auth.StateAuthenticated {
		return errors.New("nenhuma sessão ativa")
	}

	user, _ := a.manager.User()
	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	fmt.Printf("rank: %s  pc: %d  pcon: %d\n", user.Rank, user.PCPoints, user.PConPoints)
	if a.manager.IsAdmin() {
		fmt.Println("papel: admin")
	}

	if sess, ok, _ := a.store.Load(); ok {
		if info, err := auth.InspectToken(sess.Token); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Printf("sessão expira em %s\n", info.ExpiresAt.Format(time.RFC3339))
		}
	}
	return nil
}

func (a *app) feed(ctx context.Context) error {
	if err := a.controller.Refresh(ctx); err != nil {
		return err
	}

	for _, post := range a.controller.Posts() {
		liked := " "
		if post.IsLiked {
			liked = "♥"
		}
		fmt.Printf("[%s] %s %s  (%d curtidas, %d comentários)\n    %s\n",
			post.ID, liked, post.AuthorUsername, post.LikesCount, post.CommentsCount, post.Content)
	}

	portfolios := a.controller.Portfolios()
	if len(portfolios) > 0 {
		fmt.Println("\nPortfolios em destaque:")
		for _, p := range portfolios {
			fmt.Printf("[%s] %s — %s (%d votos)\n", p.ID, p.Title, p.UserUsername, p.Votes)
		}
	}
	return nil
}

func (a *app) post(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	content := fs.String("content", "", "texto do post")
	tags := fs.String("tags", "", "tags separadas por vírgula")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*content) == "" {
		return errors.New("post exige -content")
	}
	if err := a.controller.CreatePost(ctx, api.PostCreate{
		Content:  *content,
		PostType: "text",
		Tags:     forms.ParseTags(*tags),
	}); err != nil {
		return err
	}
	fmt.Println("Publicado.")
	return nil
}

func (a *app) like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("uso: acodelab like <post-id>")
	}
	if err := a.controller.Refresh(ctx); err != nil {
		return err
	}
	if err := a.controller.LikePost(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Curtido.")
	return nil
}

func (a *app) comment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("uso: acodelab comment <post-id> <texto>")
	}
	if err := a.controller.Refresh(ctx); err != nil {
		return err
	}
	postID, content := args[0], strings.Join(args[1:], " ")
	if err := a.controller.SubmitComment(ctx, postID, content); err != nil {
		return err
	}
	for _, c := range a.controller.Comments() {
		fmt.Printf("%s: %s\n", c.AuthorUsername, c.Content)
	}
	return nil
}

func (a *app) vote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("uso: acodelab vote <portfolio-id>")
	}
	if err := a.controller.Refresh(ctx); err != nil {
		return err
	}
	if err := a.controller.VotePortfolio(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Voto registrado.")
	return nil
}

func (a *app) questions(ctx context.Context, args []string) error {
	params, err := listParams("questions", args)
	if err != nil {
		return err
	}
	questions, err := a.services.Questions.List(ctx, params)
	if err != nil {
		return err
	}
	for _, q := range questions {
		fmt.Printf("[%s] %s — %s (%d votos, %d respostas)\n",
			q.ID, q.Title, q.AuthorUsername, q.Votes, q.AnswersCount)
	}
	return nil
}

func (a *app) ask(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	title := fs.String("title", "", "título da pergunta")
	content := fs.String("content", "", "corpo da pergunta")
	code := fs.String("code", "", "trecho de código opcional")
	tags := fs.String("tags", "", "tags separadas por vírgula")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*title) == "" || strings.TrimSpace(*content) == "" {
		return errors.New("ask exige -title e -content")
	}
	question, err := a.services.Questions.Create(ctx, api.QuestionCreate{
		Title:   *title,
		Content: *content,
		Code:    *code,
		Tags:    forms.ParseTags(*tags),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Pergunta publicada: [%s] %s\n", question.ID, question.Title)
	return nil
}

func (a *app) storeItems(ctx context.Context) error {
	items, err := a.services.Store.Items(ctx, api.ListParams{})
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("[%s] %s — %d PCon\n    %s\n", item.ID, item.Name, item.CostPCon, item.Description)
	}
	return nil
}

func (a *app) jobs(ctx context.Context, args []string) error {
	params, err := listParams("jobs", args)
	if err != nil {
		return err
	}
	jobs, err := a.services.Jobs.List(ctx, params)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		remote := ""
		if job.Remote {
			remote = " (remoto)"
		}
		fmt.Printf("[%s] %s — %s, %s%s\n", job.ID, job.Title, job.CompanyName, job.Location, remote)
	}
	return nil
}

func (a *app) articles(ctx context.Context, args []string) error {
	params, err := listParams("articles", args)
	if err != nil {
		return err
	}
	articles, err := a.services.Articles.List(ctx, params)
	if err != nil {
		return err
	}
	for _, article := range articles {
		fmt.Printf("[%s] %s — %s (%d upvotes)\n", article.ID, article.Title, article.AuthorUsername, article.Upvotes)
	}
	return nil
}

func (a *app) stats(ctx context.Context) error {
	stats, err := a.services.Admin.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("usuários: %d\nposts: %d\nperguntas: %d\nartigos: %d\nvagas: %d\n",
		stats.TotalUsers, stats.TotalPosts, stats.TotalQuestions, stats.TotalArticles, stats.TotalJobs)
	return nil
}

func listParams(name string, args []string) (api.ListParams, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	search := fs.String("search", "", "filtro de busca")
	limit := fs.Int("limit", config.DefaultPageSize, "máximo de resultados")
	skip := fs.Int("skip", 0, "resultados a pular")
	if err := fs.Parse(args); err != nil {
		return api.ListParams{}, err
	}
	if *limit > config.MaxPageSize {
		*limit = config.MaxPageSize
	}
	return api.ListParams{Skip: *skip, Limit: *limit, Search: *search}, nil
}
