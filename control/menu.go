package control

// ToggleRateMenu opens or closes the speed menu. Opening it closes the quality menu.
func (p *Player) ToggleRateMenu() {
	if p.closed {
		return
	}

	p.state.RateMenuOpen = !p.state.RateMenuOpen
	if p.state.RateMenuOpen {
		p.state.QualityMenuOpen = false
	}
}

// ToggleQualityMenu opens or closes the quality menu. Opening it closes the speed menu.
func (p *Player) ToggleQualityMenu() {
	if p.closed {
		return
	}

	p.state.QualityMenuOpen = !p.state.QualityMenuOpen
	if p.state.QualityMenuOpen {
		p.state.RateMenuOpen = false
	}
}

// CloseMenus hides both settings menus.
func (p *Player) CloseMenus() {
	if p.closed {
		return
	}

	p.state.RateMenuOpen = false
	p.state.QualityMenuOpen = false
}
