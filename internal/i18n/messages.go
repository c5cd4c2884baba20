package i18n

var catalog = map[string]map[string]string{
	LocaleFR: {
		"error.bad_request":                "Requête invalide",
		"error.invalid_id":                 "Format d'identifiant invalide",
		"error.unauthorized":               "Non authentifié",
		"error.forbidden":                  "Accès refusé",
		"error.internal":                   "Erreur interne du serveur",
		"error.post_not_found":             "Article introuvable",
		"error.post_fetch_failed":          "Impossible de récupérer les articles",
		"error.post_create_failed":         "Impossible de créer l'article",
		"error.post_update_failed":         "Impossible de mettre à jour l'article",
		"error.post_delete_failed":         "Impossible de supprimer l'article",
		"error.slug_exists":                "Ce slug est déjà utilisé",
		"error.application_not_found":      "Application introuvable",
		"error.application_fetch_failed":   "Impossible de récupérer les applications",
		"error.application_create_failed":  "Impossible de créer l'application",
		"error.application_update_failed":  "Impossible de mettre à jour l'application",
		"error.application_delete_failed":  "Impossible de supprimer l'application",
		"error.contact_submit_failed":      "Impossible d'envoyer le message",
		"error.contact_fetch_failed":       "Impossible de récupérer les messages",
		"error.chatbot_qa_fetch_failed":    "Impossible de récupérer les questions du chatbot",
		"error.chatbot_qa_create_failed":   "Impossible de créer la question du chatbot",
		"error.chatbot_keywords_required":  "Au moins un mot-clé non vide est requis",
		"error.language_invalid":           "Langue non prise en charge",
		"error.login_invalid":              "Identifiants invalides",
		"error.login_failed":               "Échec de la connexion",
		"error.logout_failed":              "Échec de la déconnexion",
		"error.linkedin_not_configured":    "L'intégration LinkedIn n'est pas configurée",
		"error.linkedin_auth_url_failed":   "Impossible de générer l'URL d'autorisation LinkedIn",
		"error.linkedin_state_mismatch":    "Paramètre state invalide",
		"error.linkedin_code_missing":      "Code d'autorisation manquant",
		"error.linkedin_not_connected":     "Compte LinkedIn non connecté",
		"error.linkedin_token_invalid":     "La connexion LinkedIn a expiré, veuillez vous reconnecter",
		"error.linkedin_share_invalid":     "Le texte, le titre et l'URL sont obligatoires",
		"error.linkedin_share_failed":      "Échec du partage sur LinkedIn",
		"error.linkedin_status_failed":     "Impossible de vérifier la connexion LinkedIn",
		"error.rate_limited":               "Trop de requêtes, réessayez dans %d secondes",
		"error.rate_limit_unavailable":     "Service temporairement indisponible",
		"chatbot.default":                  "Je ne suis pas sûr de comprendre votre question. Pouvez-vous la reformuler ou contacter directement notre équipe ?",
		"contact.received":                 "Merci, votre message a bien été envoyé.",
		"email.contact_notification_title": "Nouveau message de contact : %s",
		"email.contact_notification_body":  "Nom : %s\nE-mail : %s\nSujet : %s\nDate : %s\n\n%s",
	},
	LocaleEN: {
		"error.bad_request":                "Invalid request",
		"error.invalid_id":                 "Invalid ID format",
		"error.unauthorized":               "Not authenticated",
		"error.forbidden":                  "Forbidden",
		"error.internal":                   "Internal server error",
		"error.post_not_found":             "Post not found",
		"error.post_fetch_failed":          "Failed to fetch posts",
		"error.post_create_failed":         "Failed to create post",
		"error.post_update_failed":         "Failed to update post",
		"error.post_delete_failed":         "Failed to delete post",
		"error.slug_exists":                "Slug is already in use",
		"error.application_not_found":      "Application not found",
		"error.application_fetch_failed":   "Failed to fetch applications",
		"error.application_create_failed":  "Failed to create application",
		"error.application_update_failed":  "Failed to update application",
		"error.application_delete_failed":  "Failed to delete application",
		"error.contact_submit_failed":      "Failed to submit contact form",
		"error.contact_fetch_failed":       "Failed to fetch contact submissions",
		"error.chatbot_qa_fetch_failed":    "Failed to fetch chatbot QA",
		"error.chatbot_qa_create_failed":   "Failed to create chatbot QA",
		"error.chatbot_keywords_required":  "At least one non-blank keyword is required",
		"error.language_invalid":           "Unsupported language",
		"error.login_invalid":              "Invalid username or password",
		"error.login_failed":               "Login failed",
		"error.logout_failed":              "Logout failed",
		"error.linkedin_not_configured":    "LinkedIn integration is not configured",
		"error.linkedin_auth_url_failed":   "Failed to generate LinkedIn auth URL",
		"error.linkedin_state_mismatch":    "Invalid state parameter",
		"error.linkedin_code_missing":      "Missing authorization code",
		"error.linkedin_not_connected":     "LinkedIn account not connected",
		"error.linkedin_token_invalid":     "LinkedIn connection expired, please reconnect",
		"error.linkedin_share_invalid":     "Text, title and URL are required",
		"error.linkedin_share_failed":      "Failed to share on LinkedIn",
		"error.linkedin_status_failed":     "Failed to check LinkedIn connection",
		"error.rate_limited":               "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":     "Service temporarily unavailable",
		"chatbot.default":                  "I'm not sure I understand your question. Could you rephrase it or contact our team directly?",
		"contact.received":                 "Thank you, your message has been sent.",
		"email.contact_notification_title": "New contact message: %s",
		"email.contact_notification_body":  "Name: %s\nEmail: %s\nSubject: %s\nDate: %s\n\n%s",
	},
	LocaleES: {
		"error.bad_request":                "Solicitud no válida",
		"error.invalid_id":                 "Formato de identificador no válido",
		"error.unauthorized":               "No autenticado",
		"error.forbidden":                  "Acceso denegado",
		"error.internal":                   "Error interno del servidor",
		"error.post_not_found":             "Artículo no encontrado",
		"error.post_fetch_failed":          "No se pudieron obtener los artículos",
		"error.slug_exists":                "El slug ya está en uso",
		"error.application_not_found":      "Aplicación no encontrada",
		"error.contact_submit_failed":      "No se pudo enviar el mensaje",
		"error.chatbot_keywords_required":  "Se requiere al menos una palabra clave no vacía",
		"error.language_invalid":           "Idioma no compatible",
		"error.login_invalid":              "Usuario o contraseña incorrectos",
		"error.linkedin_state_mismatch":    "Parámetro state no válido",
		"error.linkedin_not_connected":     "Cuenta de LinkedIn no conectada",
		"error.linkedin_share_invalid":     "El texto, el título y la URL son obligatorios",
		"error.rate_limited":               "Demasiadas solicitudes, inténtelo de nuevo en %d segundos",
		"chatbot.default":                  "No estoy seguro de entender su pregunta. ¿Puede reformularla o contactar directamente con nuestro equipo?",
		"contact.received":                 "Gracias, su mensaje ha sido enviado.",
		"email.contact_notification_title": "Nuevo mensaje de contacto: %s",
		"email.contact_notification_body":  "Nombre: %s\nCorreo: %s\nAsunto: %s\nFecha: %s\n\n%s",
	},
}
