package seed

import (
	"time"

	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/models"
)

func ptr[T any](v T) *T { return &v }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Posts 示例博客文章（法语）
func Posts() []models.Post {
	author := uint(1)
	return []models.Post{
		{
			Title:    "L'IA au service de la transformation d'entreprise",
			Slug:     "ia-transformation-entreprise",
			Excerpt:  "Comment l'intelligence artificielle révolutionne les processus métier et accélère la transformation numérique des organisations.",
			Content:  "<p>L'intelligence artificielle est devenue un levier majeur de transformation pour les entreprises qui cherchent à moderniser leurs opérations.</p><h2>Automatisation des tâches répétitives</h2><p>Les systèmes d'apprentissage automatique prennent en charge les tâches chronophages et libèrent du temps pour les équipes.</p><h2>Aide à la décision</h2><p>L'analyse prédictive éclaire les choix stratégiques à partir des données de l'entreprise.</p>",
			ImageURL: ptr("https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=800&q=80"),
			Category: "Transformation Numérique",
			Date:     day(2023, time.May, 12),
			AuthorID: ptr(author),
			Language: constants.LanguageFR,
		},
		{
			Title:    "5 étapes clés pour réussir votre réorganisation",
			Slug:     "etapes-cles-reorganisation",
			Excerpt:  "Guide pratique pour mener à bien un projet de réorganisation d'entreprise tout en maintenant l'engagement des équipes.",
			Content:  "<p>La réorganisation d'une entreprise demande une planification minutieuse et une exécution rigoureuse.</p><h2>1. Définir clairement les objectifs</h2><p>Avant tout changement, précisez ce que la réorganisation doit accomplir.</p><h2>2. Impliquer les équipes</h2><p>Associez les collaborateurs dès le début pour préserver leur engagement.</p>",
			ImageURL: ptr("https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&w=800&q=80"),
			Category: "Organisation d'Entreprise",
			Date:     day(2023, time.April, 25),
			AuthorID: ptr(author),
			Language: constants.LanguageFR,
		},
		{
			Title:    "Automatisation intelligente : au-delà des chatbots",
			Slug:     "automatisation-intelligente-chatbots",
			Excerpt:  "Découvrez comment les solutions d'IA peuvent automatiser les tâches complexes et libérer le potentiel créatif de vos équipes.",
			Content:  "<p>L'automatisation intelligente dépasse largement les chatbots qui répondent aux questions fréquentes.</p><h2>Au-delà des interactions simples</h2><p>Elle analyse des contrats, détecte des anomalies et prend des décisions selon des critères multiples.</p><h2>Libérer le potentiel humain</h2><p>L'objectif n'est pas de remplacer les collaborateurs mais de les concentrer sur la créativité.</p>",
			ImageURL: ptr("https://images.unsplash.com/photo-1573164574572-cb89e39749b4?auto=format&fit=crop&w=800&q=80"),
			Category: "Solutions IA",
			Date:     day(2023, time.March, 3),
			AuthorID: ptr(author),
			Language: constants.LanguageFR,
		},
	}
}

// Applications 实验室应用展示
func Applications() []models.Application {
	items := []struct {
		title, description, icon string
	}{
		{"IA Assistant", "Assistant virtuel intelligent pour l'automatisation de tâches administratives", "fas fa-robot"},
		{"DataViz Pro", "Outil de visualisation de données avancé pour l'aide à la décision", "fas fa-chart-line"},
		{"ProcessFlow", "Plateforme de modélisation et d'optimisation des processus métier", "fas fa-tasks"},
		{"DocuGenius", "Solution d'analyse et de génération de documents assistée par IA", "fas fa-file-contract"},
		{"ChatIntegrator", "Plateforme d'intégration de chatbots intelligents personnalisables", "fas fa-comments"},
		{"IdeaLab", "Environnement collaboratif d'innovation et de brainstorming", "fas fa-lightbulb"},
	}
	apps := make([]models.Application, 0, len(items))
	for i, item := range items {
		apps = append(apps, models.Application{
			Title:       item.title,
			Description: item.description,
			Icon:        item.icon,
			URL:         "#",
			Order:       i + 1,
			Language:    constants.LanguageFR,
		})
	}
	return apps
}

// ChatbotQas 聊天机器人问答（fr / en）
func ChatbotQas() []models.ChatbotQa {
	return []models.ChatbotQa{
		{
			Language: constants.LanguageFR,
			Keywords: models.StringArray{"transformation", "digitale", "numérique"},
			Question: "Que proposez-vous en matière de transformation numérique?",
			Answer:   "La transformation numérique est au cœur de nos expertises. Nous analysons vos processus existants, identifions les opportunités d'amélioration et mettons en place les technologies adaptées à vos besoins.",
		},
		{
			Language: constants.LanguageFR,
			Keywords: models.StringArray{"ia", "intelligence artificielle", "automatisation"},
			Question: "Quelles solutions d'IA proposez-vous?",
			Answer:   "Nos solutions d'IA automatisent les processus et améliorent la prise de décision : analyse prédictive, chatbots intelligents et automatisation sur mesure pour votre secteur.",
		},
		{
			Language: constants.LanguageFR,
			Keywords: models.StringArray{"tarif", "prix", "coût", "budget"},
			Question: "Quels sont vos tarifs?",
			Answer:   "Nos tarifs dépendent de vos besoins. Le premier rendez-vous est gratuit et nous vous remettons ensuite un devis détaillé.",
		},
		{
			Language: constants.LanguageEN,
			Keywords: models.StringArray{"transformation", "digital"},
			Question: "What do you offer in terms of digital transformation?",
			Answer:   "Digital transformation is at the core of our expertise. We analyze your existing processes, identify improvement opportunities and implement the technologies that fit your needs.",
		},
		{
			Language: constants.LanguageEN,
			Keywords: models.StringArray{"ai", "artificial intelligence", "automation"},
			Question: "What AI solutions do you offer?",
			Answer:   "Our AI solutions automate processes and improve decision-making: predictive analytics, intelligent chatbots and process automation tailored to your industry.",
		},
		{
			Language: constants.LanguageEN,
			Keywords: models.StringArray{"pricing", "price", "cost", "budget"},
			Question: "What are your rates?",
			Answer:   "Our rates depend on your needs. The first meeting is free and we then send you a detailed quote.",
		},
	}
}
